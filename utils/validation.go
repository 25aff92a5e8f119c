package utils

import (
	"net/mail"
	"time"
	"unicode"
)

// FieldError is one field-level validation message, returned to clients in
// the errors array of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const BirthdateLayout = "2006-01-02"

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func ParseBirthdate(value string) (time.Time, bool) {
	t, err := time.Parse(BirthdateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StrongPassword enforces the registration policy: at least 5 characters with
// one lowercase, one uppercase, one digit and one symbol.
func StrongPassword(password string) bool {
	if len(password) < 5 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func Require(errs []FieldError, field, value, message string) []FieldError {
	if value == "" {
		errs = append(errs, FieldError{Field: field, Message: message})
	}
	return errs
}
