package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/labelforge/annotate-backend/internal/apperr"
)

const minPasswordLength = 8

// ValidatePassword enforces the signup password policy: at least 8 characters
// and at least one digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperr.InvalidInputMsg("Password must be at least 8 characters long.")
	}

	hasDigit := false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return apperr.InvalidInputMsg("Password must contain at least one number.")
	}

	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
