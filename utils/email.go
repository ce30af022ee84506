package utils

import "fmt"

// CustomerEmail derives a deterministic address from a booking's user
// identifier. Bookings carry a plain string instead of a real identity, so
// this placeholder scheme stands in until a user model exists.
func CustomerEmail(user string) string {
	return fmt.Sprintf("%s@example.com", user)
}
