package upstream

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKind classifies failures of the booking API so handlers can map them to
// the right user feedback.
type ErrKind int

const (
	// ErrTransport is a network/decoding failure; retryable by the user.
	ErrTransport ErrKind = iota
	// ErrBusiness is a backend-reported error payload ({"error": "..."}).
	ErrBusiness
	// ErrNotYetAvailable is the pre-reservation case ("Game available from
	// <date>"); informational rather than destructive.
	ErrNotYetAvailable
	// ErrNotFound is a 404.
	ErrNotFound
	// ErrUnauthorized is a 401.
	ErrUnauthorized
	// ErrForbidden is a 403, typically an anti-forgery token rejection. The
	// client refreshes its token and the user retries; never retried
	// silently.
	ErrForbidden
)

// APIError is any non-success outcome of a booking API call.
type APIError struct {
	Kind    ErrKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream request failed (status %d)", e.Status)
}

const notYetAvailablePrefix = "Game available from"

func classify(status int, message string) *APIError {
	kind := ErrBusiness
	switch status {
	case 401:
		kind = ErrUnauthorized
	case 403:
		kind = ErrForbidden
	case 404:
		kind = ErrNotFound
	}
	if strings.HasPrefix(message, notYetAvailablePrefix) {
		kind = ErrNotYetAvailable
	}
	return &APIError{Kind: kind, Status: status, Message: message}
}

// KindOf returns the error's kind, or ErrTransport for anything that is not
// an APIError.
func KindOf(err error) ErrKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ErrTransport
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
