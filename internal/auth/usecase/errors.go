package usecase

import (
	"errors"
	"strings"
)

// ErrInvalidCredentials is returned for both unknown email and wrong
// password so the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("Email ou senha incorreto")

// ValidationError carries every failing field message, not just the
// first one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
