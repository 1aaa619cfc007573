package domain

import "unicode/utf8"

// PasswordStrength scores a password from 0 to 4: anything shorter than
// eight characters is 0, otherwise 1 plus one point each for a digit, an
// uppercase letter and a character that is neither letter nor digit.
type PasswordStrength struct {
	Score int
	Label string
}

var strengthLabels = [...]string{"Too Weak", "Weak", "Medium", "Good", "Strong"}

// MinimumSignupStrength is the lowest score accepted on the signup form.
const MinimumSignupStrength = 2

// CheckPasswordStrength scores a candidate password.
func CheckPasswordStrength(password string) PasswordStrength {
	if utf8.RuneCountInString(password) < 8 {
		return PasswordStrength{Score: 0, Label: strengthLabels[0]}
	}

	var digit, upper, special bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r < 'a' || r > 'z':
			special = true
		}
	}

	score := 1
	for _, ok := range []bool{digit, upper, special} {
		if ok {
			score++
		}
	}
	return PasswordStrength{Score: score, Label: strengthLabels[score]}
}
