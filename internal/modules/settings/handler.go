package settings

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kanoonai/kanoon-web/internal/activity"
	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

const (
	featureName = "settings"

	// maxPictureBytes bounds an uploaded profile picture before encoding.
	maxPictureBytes = 2 << 20

	profileSaved          = "Profile updated successfully!"
	passwordSaved         = "Password updated successfully!"
	passwordMismatch      = "New password and confirmation do not match!"
	currentPasswordNeeded = "Please enter your current password."
	pictureNotImage       = "Please choose an image file for your profile picture."
	pictureTooLarge       = "Profile picture is too large. The maximum size is 2 MB."
)

// Handler serves the account settings page.
type Handler struct {
	deps     feature.Deps
	recorder *activity.Recorder
}

func NewHandler(deps feature.Deps, recorder *activity.Recorder) *Handler {
	return &Handler{deps: deps, recorder: recorder}
}

func (h *Handler) Get(c echo.Context) error {
	return feature.Page(c, h.deps.Renderer, routes.Settings, page(profileOf(c), nil, nil))
}

// Profile saves the editable profile fields and merges the stored profile
// returned by the backend into the session.
func (h *Handler) Profile(c echo.Context) error {
	current := profileOf(c)
	update := backend.ProfileUpdate{
		Email:       current.Email,
		Name:        strings.TrimSpace(c.FormValue("name")),
		Gender:      genderOrUnset(current.Gender),
		PhoneNumber: strings.TrimSpace(c.FormValue("phone")),
	}

	var region g.Node
	saved, err := h.saveProfile(c, current, update)
	if err != nil {
		feature.Log(c, featureName, err)
		region = view.ErrorBanner("Error: " + backend.Message(err))
	} else {
		current = saved
		region = view.SuccessBanner(profileSaved)
	}
	return feature.Respond(c, h.deps.Renderer, routes.Settings, region, func(region g.Node) g.Node {
		return page(current, region, nil)
	})
}

func (h *Handler) saveProfile(c echo.Context, current domain.Session, update backend.ProfileUpdate) (domain.Session, error) {
	picture, err := pictureOf(c, current)
	if err != nil {
		return current, err
	}
	update.ProfilePic = picture

	stored, err := h.deps.Backend.UpdateProfile(c.Request().Context(), update)
	feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
	if err != nil {
		return current, err
	}

	merged := current.Merge(*stored, true)
	if err := h.deps.Sessions.Save(c, &merged); err != nil {
		return current, fmt.Errorf("save session: %w", err)
	}
	return merged, nil
}

// Password changes the password after the local checks pass.
func (h *Handler) Password(c echo.Context) error {
	current := c.FormValue("current")
	next := c.FormValue("new")
	confirm := c.FormValue("confirm")

	var region g.Node
	switch {
	case next != confirm:
		region = view.ErrorBanner(passwordMismatch)
	case current == "":
		region = view.ErrorBanner(currentPasswordNeeded)
	default:
		_, err := h.deps.Backend.UpdatePassword(c.Request().Context(), backend.PasswordUpdate{
			Email:           profileOf(c).Email,
			CurrentPassword: current,
			NewPassword:     next,
		})
		feature.Record(c, h.recorder, h.deps.Sessions, featureName, err)
		if err != nil {
			feature.Log(c, featureName, err)
			region = view.ErrorBanner("Error: " + backend.Message(err))
		} else {
			region = view.SuccessBanner(passwordSaved)
		}
	}
	return feature.Respond(c, h.deps.Renderer, routes.Settings, region, func(region g.Node) g.Node {
		return page(profileOf(c), nil, region)
	})
}

func profileOf(c echo.Context) domain.Session {
	if user := middleware.CurrentUser(c); user != nil {
		return *user
	}
	return domain.Session{}
}

// pictureOf returns the picture to send: a data URI for a new upload, nil
// when removal was requested, or the current picture otherwise.
func pictureOf(c echo.Context, current domain.Session) (*string, error) {
	if c.FormValue("remove_picture") == "on" {
		return nil, nil
	}

	fh, err := c.FormFile("picture")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		if current.ProfilePicture == "" {
			return nil, nil
		}
		return &current.ProfilePicture, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read picture: %w", err)
	}
	if fh.Size > maxPictureBytes {
		return nil, domain.Invalid(pictureTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open picture: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPictureBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read picture: %w", err)
	}
	if len(data) > maxPictureBytes {
		return nil, domain.Invalid(pictureTooLarge)
	}
	uri, err := dataURI(data)
	if err != nil {
		return nil, err
	}
	return &uri, nil
}

// dataURI encodes an image the way a browser FileReader would.
func dataURI(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", domain.Invalid(pictureNotImage)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
