package handlers

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// SignupRequest is the registration form. Gender, phone and terms are
// checked by hand so their messages come out in form order.
type SignupRequest struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required"`
	PhoneNumber     string `form:"phone_number"`
	Gender          string `form:"gender"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	Terms           string `form:"terms"`
}

// ResetPasswordRequest sets a new password for a reset token.
type ResetPasswordRequest struct {
	Token           string `form:"token"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}
