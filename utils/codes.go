package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTP returns a 6-digit one-time code used for delivery handoff
// confirmation and password resets.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// ValidUTR reports whether s is a bank UTR: exactly 12 digits.
func ValidUTR(s string) bool {
	if len(s) != 12 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
