// Package backend is the HTTP client for the KanoonAI REST backend. Every
// feature page calls exactly one method per submission; calls are
// at-most-once with no retries and no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "kanoon-web/backend"

// Client talks to one backend origin.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the overall timeout of each backend call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTracer sets the tracer used for backend spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveURL turns a link returned by the backend into an absolute URL on
// the backend host. Absolute links are returned unchanged.
func (c *Client) ResolveURL(link string) string {
	if link == "" {
		return ""
	}
	if u, err := url.Parse(link); err == nil && u.IsAbs() {
		return link
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return c.baseURL + link
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, path, out)
}

// do sends req and applies the uniform error contract.
func (c *Client) do(req *http.Request, path string, out any) error {
	ctx, span := c.tracer.Start(req.Context(), "backend "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()
	req = req.WithContext(ctx)

	resp, err := c.http.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "Backend request failed", "method", req.Method, "path", path, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", req.Method, path, ctxErr)
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		slog.WarnContext(ctx, "Backend rejected request", "path", path, "status", resp.StatusCode, "detail", apiErr.Message)
		span.SetStatus(codes.Error, apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		span.RecordError(err)
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
