package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors raised by services and repositories. The HTTP boundary maps
// each one to a deterministic status code.
var (
	// ErrInvalidCredentials is deliberately shared by the "no such login" and
	// "wrong password" cases so the two are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")

	ErrUsernameTaken = errors.New("the username is already taken")
	ErrEmailInUse    = errors.New("email is already in use")
	ErrUserNotFound  = errors.New("user not found")

	ErrDishNotFound     = errors.New("dish not found")
	ErrDishExists       = errors.New("dish with this name already exists")
	ErrDishTypeNotFound = errors.New("dish type not found")

	ErrEventNotFound   = errors.New("event not found")
	ErrEventNotPending = errors.New("event is no longer pending")

	ErrEventRequestNotFound = errors.New("event request not found")

	ErrAccessDenied = errors.New("access denied")
)

// ValidationError reports the first request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
