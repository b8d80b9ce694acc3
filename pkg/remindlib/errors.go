package remindlib

import "fmt"

// ValidationError reports a rejected Create call. No mutation happens
// when one is returned.
type ValidationError struct {
	// Field names the rejected input ("message" or "delay").
	Field string
	// Reason is a short human-readable explanation.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
