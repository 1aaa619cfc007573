package handlers

import (
	"net/http"

	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/kanoonai/kanoon-web/internal/middleware"
	"github.com/kanoonai/kanoon-web/internal/rendering"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/session"
	"github.com/kanoonai/kanoon-web/internal/view"
	"github.com/kanoonai/kanoon-web/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

const (
	missingCredentials = "Please enter your email and password."
	missingSignupField = "Please enter your name and email."
	weakPassword       = "Password is too weak. Please choose a stronger password."
	signupMismatch     = "Passwords do not match. Please re-enter."
	genderRequired     = "Please select your gender."
	phoneRequired      = "Please enter your phone number."
	termsRequired      = "You must agree to the Terms & Conditions."
	resetMismatch      = "Passwords do not match."
	resetTooShort      = "Password must be at least 8 characters."
	loggedOut          = "You have been logged out."

	minResetLength = 8
)

// AuthHandler serves the sign-in, registration and password reset pages.
// Every flow talks to the backend and keeps the resulting profile in the
// visitor's session.
type AuthHandler struct {
	backend  *backend.Client
	sessions session.Store
	renderer rendering.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(client *backend.Client, sessions session.Store, renderer rendering.Renderer) *AuthHandler {
	return &AuthHandler{
		backend:  client,
		sessions: sessions,
		renderer: renderer,
	}
}

// LoginGet renders the login page (GET /login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return h.login(c, pages.LoginData{})
}

// LoginPost signs the visitor in and sends them to the chatbot. A rejected
// attempt re-renders the form with the submitted email kept.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	data := pages.LoginData{Email: req.Email}
	if err := c.Validate(&req); err != nil {
		data.Error = missingCredentials
		return h.login(c, data)
	}

	profile, err := h.backend.Login(c.Request().Context(), backend.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed login attempt", "email", req.Email, "error", err)
		data.Error = backend.Message(err)
		return h.login(c, data)
	}
	return h.signIn(c, profile)
}

func (h *AuthHandler) login(c echo.Context, data pages.LoginData) error {
	return renderPublic(c, h.renderer, "Login", http.StatusOK, pages.LoginContent(data))
}

// SignupGet renders the registration page (GET /signup).
func (h *AuthHandler) SignupGet(c echo.Context) error {
	return h.signup(c, pages.SignupData{})
}

// SignupPost registers the visitor. The local checks run in form order and
// stop at the first failure without calling the backend.
func (h *AuthHandler) SignupPost(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	data := pages.SignupData{Name: req.Name, Email: req.Email, Phone: req.PhoneNumber, Gender: req.Gender}

	if msg := checkSignup(c, &req); msg != "" {
		data.Error = msg
		return h.signup(c, data)
	}

	profile, err := h.backend.Signup(c.Request().Context(), backend.Signup{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Signup rejected", "email", req.Email, "error", err)
		data.Error = backend.Message(err)
		return h.signup(c, data)
	}
	return h.signIn(c, profile)
}

func checkSignup(c echo.Context, req *SignupRequest) string {
	switch {
	case c.Validate(req) != nil:
		return missingSignupField
	case domain.CheckPasswordStrength(req.Password).Score < domain.MinimumSignupStrength:
		return weakPassword
	case req.Password != req.ConfirmPassword:
		return signupMismatch
	case req.Gender == "":
		return genderRequired
	case req.PhoneNumber == "":
		return phoneRequired
	case req.Terms != "on":
		return termsRequired
	}
	return ""
}

func (h *AuthHandler) signup(c echo.Context, data pages.SignupData) error {
	return renderPublic(c, h.renderer, "Sign Up", http.StatusOK, pages.SignupContent(data))
}

// SignupStrength renders the strength meter for the typed password.
func (h *AuthHandler) SignupStrength(c echo.Context) error {
	strength := domain.CheckPasswordStrength(c.FormValue("password"))
	return h.renderer.RenderPage(c, http.StatusOK, pages.PasswordStrength(strength))
}

func (h *AuthHandler) signIn(c echo.Context, profile *domain.Session) error {
	if err := h.sessions.Save(c, profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save session").SetInternal(err)
	}
	return c.Redirect(http.StatusSeeOther, routes.Chatbot)
}

// Logout forgets the signed-in profile.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not clear session").SetInternal(err)
	}
	view.SetFlashSuccess(c, loggedOut)
	return c.Redirect(http.StatusSeeOther, routes.Home)
}

// ForgotPasswordGet renders the reset request page.
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	return h.forgot(c, pages.ForgotPasswordData{})
}

// ForgotPasswordPost asks the backend to mail a reset link and shows its
// acknowledgement.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	email := c.FormValue("email")
	data := pages.ForgotPasswordData{Email: email}

	msg, err := h.backend.ForgotPassword(c.Request().Context(), email)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Info("Reset link request failed", "error", err)
		data.Error = backend.Message(err)
	} else {
		data.Message = msg
	}
	return h.forgot(c, data)
}

func (h *AuthHandler) forgot(c echo.Context, data pages.ForgotPasswordData) error {
	return renderPublic(c, h.renderer, "Forgot Password", http.StatusOK, pages.ForgotPasswordContent(data))
}

// ResetPasswordGet renders the new password form for ?token=, or the
// invalid link page when the token is missing.
func (h *AuthHandler) ResetPasswordGet(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return h.reset(c, pages.ResetInvalidContent())
	}
	return h.reset(c, pages.ResetPasswordContent(pages.ResetPasswordData{Token: token}))
}

// ResetPasswordPost sets the new password. On success the confirmation
// page sends the visitor on to the login page.
func (h *AuthHandler) ResetPasswordPost(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Token == "" {
		return h.reset(c, pages.ResetInvalidContent())
	}

	data := pages.ResetPasswordData{Token: req.Token}
	switch {
	case req.Password != req.ConfirmPassword:
		data.Error = resetMismatch
	case len(req.Password) < minResetLength:
		data.Error = resetTooShort
	default:
		if _, err := h.backend.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
			middleware.FromContext(c.Request().Context()).Warn("Password reset failed", "error", err)
			data.Error = backend.Message(err)
		} else {
			return h.reset(c, pages.ResetSuccessContent())
		}
	}
	return h.reset(c, pages.ResetPasswordContent(data))
}

func (h *AuthHandler) reset(c echo.Context, content g.Node) error {
	return renderPublic(c, h.renderer, "Reset Password", http.StatusOK, content)
}
