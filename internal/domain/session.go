package domain

// Session is the locally cached representation of the signed-in user.
// Field names follow the backend's user profile so a profile response
// decodes straight into it.
type Session struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone_number,omitempty"`
	Gender         string `json:"gender,omitempty"`
	ProfilePicture string `json:"profile_pic,omitempty"`
}

const (
	anonymousName  = "User"
	anonymousEmail = "user@example.com"
)

// DisplayName returns the name shown in the top bar, falling back to the
// anonymous placeholder.
func (s *Session) DisplayName() string {
	if s == nil || s.Name == "" {
		return anonymousName
	}
	return s.Name
}

// DisplayEmail returns the email shown in the top bar, falling back to the
// anonymous placeholder.
func (s *Session) DisplayEmail() string {
	if s == nil || s.Email == "" {
		return anonymousEmail
	}
	return s.Email
}

// Merge returns a copy of s with every non-empty field of update applied.
// A nil picture in the update clears it only when clearPicture is set.
func (s Session) Merge(update Session, clearPicture bool) Session {
	if update.ID != 0 {
		s.ID = update.ID
	}
	if update.Name != "" {
		s.Name = update.Name
	}
	if update.Email != "" {
		s.Email = update.Email
	}
	if update.Phone != "" {
		s.Phone = update.Phone
	}
	if update.Gender != "" {
		s.Gender = update.Gender
	}
	if update.ProfilePicture != "" || clearPicture {
		s.ProfilePicture = update.ProfilePicture
	}
	return s
}
