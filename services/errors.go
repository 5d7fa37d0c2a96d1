package services

import (
	"errors"
	"strings"
)

// Error kinds the controllers map onto HTTP statuses. Services attach
// user-facing messages with notFound/forbidden/conflict below; callers
// match with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// statusError pairs a sentinel with a message safe to show to clients.
type statusError struct {
	sentinel error
	msg      string
}

func (e *statusError) Error() string { return e.msg }
func (e *statusError) Unwrap() error { return e.sentinel }

func notFound(msg string) error  { return &statusError{sentinel: ErrNotFound, msg: msg} }
func forbidden(msg string) error { return &statusError{sentinel: ErrForbidden, msg: msg} }
func conflict(msg string) error  { return &statusError{sentinel: ErrConflict, msg: msg} }

// ValidationError reports a rejected request. Fields names the missing
// request fields when the failure is a presence check.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func invalid(msg string) error { return &ValidationError{Message: msg} }

// OwnedBy is the single ownership gate: every operation touching a
// user-owned resource compares the resolved caller identity against the
// resource owner through it.
func OwnedBy(callerID, ownerID uint) error {
	if callerID != ownerID {
		return ErrForbidden
	}
	return nil
}
