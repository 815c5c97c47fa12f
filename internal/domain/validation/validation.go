// Package validation carries field-level violation messages across the
// domain services. A validation failure is a list of human-readable
// messages, one per violated rule, never a panic.
package validation

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for all project dates.
const DateLayout = "2006-01-02"

// Error aggregates violation messages for a single validated input.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewError wraps a non-empty message list. Returns nil for an empty list
// so callers can write `return validation.NewError(msgs)` unconditionally.
func NewError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &Error{Messages: messages}
}

// AsError extracts an *Error from err, if present.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// ValidDate reports whether s parses as an ISO calendar date (YYYY-MM-DD).
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
