package utils

import (
	"errors"
	"regexp"
	"time"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidateEmail does a basic shape check on an email address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// ValidatePassword enforces the account password policy: at least 8
// characters with one digit and one uppercase letter.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit {
		return errors.New("password must contain at least one number")
	}
	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	return nil
}

// ValidateBirthDate parses a YYYY-MM-DD birth date and checks it falls in
// [1900, today).
func ValidateBirthDate(raw string) (time.Time, error) {
	birthDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("date format should be YYYY-MM-DD")
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if birthDate.Year() < 1900 || !birthDate.Before(today) {
		return time.Time{}, errors.New("invalid birth date")
	}
	return birthDate, nil
}
