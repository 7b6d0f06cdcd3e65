package booking

import (
	"errors"
	"fmt"
)

// Validation and flow errors caught before any upstream request is made.
var (
	ErrWrongStep          = errors.New("action not allowed at this step")
	ErrMissingFields      = errors.New("required fields missing")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidDate        = errors.New("invalid date")
	ErrPastDate           = errors.New("cannot book for past dates")
	ErrSlotUnavailable    = errors.New("time slot not available")
	ErrInvalidOTP         = errors.New("verification code must be 6 digits")
	ErrDisclaimerRequired = errors.New("disclaimer must be accepted")
	ErrNotVerified        = errors.New("email not verified")
)

// CapacityError blocks a player count above the currently known ceiling.
type CapacityError struct {
	Ceiling int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("player count exceeds slot capacity (max %d)", e.Ceiling)
}
