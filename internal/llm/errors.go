package llm

import (
	"errors"
	"fmt"
)

// UnavailableError means the evaluation provider could not be reached or
// did not answer within the call's deadline.
type UnavailableError struct {
	Axis  string
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("evaluation unavailable for %s: %v", e.Axis, e.Cause)
	}
	return fmt.Sprintf("evaluation unavailable for %s", e.Axis)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedError means the provider answered but the payload could not be
// parsed into a bounded judgment.
type MalformedError struct {
	Axis    string
	Payload string
	Cause   error
}

func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed evaluation for %s: %v", e.Axis, e.Cause)
	}
	return fmt.Sprintf("malformed evaluation for %s", e.Axis)
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}

// IsRecoverable reports whether an error is one of the two per-axis
// failure kinds that degrade to a zero score instead of aborting.
func IsRecoverable(err error) bool {
	var unavailable *UnavailableError
	var malformed *MalformedError
	return errors.As(err, &unavailable) || errors.As(err, &malformed)
}
