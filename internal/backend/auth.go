package backend

import (
	"context"
	"net/http"

	"github.com/kanoonai/kanoon-web/internal/domain"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Signup struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number"`
}

// ProfileUpdate replaces the editable profile fields. A nil ProfilePic is
// sent as null and removes the stored picture.
type ProfileUpdate struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Gender      string  `json:"gender"`
	PhoneNumber string  `json:"phone_number"`
	ProfilePic  *string `json:"profile_pic"`
}

type PasswordUpdate struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login returns the profile of the authenticated user.
func (c *Client) Login(ctx context.Context, creds Credentials) (*domain.Session, error) {
	var profile domain.Session
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login", creds, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Signup creates an account and returns its profile.
func (c *Client) Signup(ctx context.Context, req Signup) (*domain.Session, error) {
	var profile domain.Session
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/signup", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp MessageResponse
	body := map[string]string{"email": email}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/forgot-password", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	var resp MessageResponse
	body := map[string]string{"token": token, "new_password": newPassword}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/reset-password", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateProfile returns the profile as stored by the backend.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (*domain.Session, error) {
	var profile domain.Session
	if err := c.sendJSON(ctx, http.MethodPut, "/api/auth/update-profile", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdatePassword(ctx context.Context, req PasswordUpdate) (string, error) {
	var resp MessageResponse
	if err := c.sendJSON(ctx, http.MethodPut, "/api/auth/update-password", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
