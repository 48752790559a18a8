package scoring

import "fmt"

// InvalidCandidateError means the candidate profile is structurally
// unusable and the evaluation was aborted before scoring.
type InvalidCandidateError struct {
	Cause error
}

func (e *InvalidCandidateError) Error() string {
	return fmt.Sprintf("invalid candidate profile: %v", e.Cause)
}

func (e *InvalidCandidateError) Unwrap() error {
	return e.Cause
}

// InvalidJobError means the job specification is structurally unusable
// and the evaluation was aborted before scoring.
type InvalidJobError struct {
	Cause error
}

func (e *InvalidJobError) Error() string {
	return fmt.Sprintf("invalid job specification: %v", e.Cause)
}

func (e *InvalidJobError) Unwrap() error {
	return e.Cause
}
