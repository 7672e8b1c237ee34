package user

import (
	"strings"
	"unicode/utf8"
)

const MaxUsernameLen = 255

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateUsername(username string) error
}

type UsernameValidator struct {
	maxLen int
}

func NewUsernameValidator() *UsernameValidator {
	return &UsernameValidator{maxLen: MaxUsernameLen}
}

// Normalize trims surrounding whitespace; the trimmed form is what gets stored.
func Normalize(username string) string {
	return strings.TrimSpace(username)
}

func (v *UsernameValidator) ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}

	if utf8.RuneCountInString(username) > v.maxLen {
		return ErrUsernameTooLong
	}

	return nil
}
