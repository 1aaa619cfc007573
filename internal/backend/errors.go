package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/kanoonai/kanoon-web/internal/domain"
)

// ErrUnavailable wraps transport failures where no response arrived.
var ErrUnavailable = errors.New("backend unavailable")

const (
	unknownErrorMessage      = "An unknown error occurred."
	unavailableMessage       = "We couldn't reach the KanoonAI service. Please try again."
	cancelledMessage         = "The request was cancelled."
	pydanticValueErrorPrefix = "Value error, "
	maxErrorBody             = 1 << 20
)

// APIError is a non-2xx response from the backend, reduced to one message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// decodeError applies the backend error contract to a non-2xx response.
func decodeError(resp *http.Response) *APIError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: statusLine(resp)}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.Replace(detailMessage(payload.Detail), pydanticValueErrorPrefix, "", 1),
	}
}

func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return unknownErrorMessage
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if text == "" {
			return unknownErrorMessage
		}
		return text
	}

	var fields []fieldError
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("Field: '%s', Message: %s", lastLoc(f.Loc), f.Msg))
		}
		return strings.Join(parts, "; ")
	}

	return unknownErrorMessage
}

func lastLoc(loc []any) string {
	if len(loc) == 0 {
		return ""
	}
	return fmt.Sprint(loc[len(loc)-1])
}

// statusLine renders "<status> <statusText>".
func statusLine(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return code + " " + text
}

// Message converts any error from this package, or a local validation
// error, into the text shown to the visitor.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	switch {
	case errors.Is(err, ErrUnavailable):
		return unavailableMessage
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return cancelledMessage
	}
	return unknownErrorMessage
}
