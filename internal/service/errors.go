package service

import (
	"errors"
)

// Error taxonomy returned by the services. Handlers map these to
// 404/403/400 through errors.Is / errors.As, anything else is a 500.
var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("record belongs to another user")
)

// ValidationError carries the client-facing message for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
