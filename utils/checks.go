package utils

import (
	"regexp"
	"strings"

	game_constants "questbook/constants/game"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail is the client-side well-formedness check run before any OTP
// request; the backend remains the authority.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// TrimEmpty reports whether s is empty after trimming whitespace.
func TrimEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizeOTP strips every non-digit and caps the result at the code
// length, mirroring the input-boundary rules of the code field.
func NormalizeOTP(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == game_constants.OTPLength {
			break
		}
	}
	return b.String()
}
