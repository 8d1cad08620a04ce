package user

import (
	"regexp"
	"strings"

	"neighbiz/internal/pkg/errs"
)

var (
	ErrInvalidPhone    = errs.Validation("INVALID_PHONE", "phone number must match 010XXXXXXXX")
	ErrInvalidUsername = errs.Validation("INVALID_USERNAME", "username must be 4-30 letters, digits or underscores")
	ErrPasswordTooWeak = errs.Validation("PASSWORD_TOO_WEAK", "password must be at least 8 characters long")
	ErrInvalidName     = errs.Validation("INVALID_NAME", "name must be 1-50 characters")
)

var (
	phoneRegex    = regexp.MustCompile(`^010\d{8}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{4,30}$`)
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
	MaxNameLength     = 50
)

type Phone struct {
	value string
}

// NewPhone accepts hyphenated input and normalizes to digits only.
func NewPhone(s string) (Phone, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if !phoneRegex.MatchString(normalized) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: normalized}, nil
}

// ReconstructPhone skips validation for values loaded from storage.
func ReconstructPhone(s string) Phone {
	return Phone{value: s}
}

func (p Phone) Value() string { return p.value }

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string { return u.value }

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength || len(s) > MaxPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string { return p.value }

func validateName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > MaxNameLength {
		return "", ErrInvalidName
	}
	return s, nil
}
