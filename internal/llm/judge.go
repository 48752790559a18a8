// Package llm provides the delegated language-evaluation capability used by
// the scoring components, with a Gemini production adapter and a
// deterministic stub for offline use and tests.
package llm

import "context"

// Request is the structured context for one bounded judgment.
type Request struct {
	// Axis names the scored dimension, e.g. "culture_fit".
	Axis string
	// Prompt is the fully rendered evaluation prompt.
	Prompt string
	// MaxScore is the upper bound the judge must respect.
	MaxScore float64
}

// Judgment is a bounded numeric score with its justification text.
type Judgment struct {
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

// Judge evaluates one axis. Implementations return *UnavailableError when
// the provider cannot be reached and *MalformedError when the payload
// cannot be parsed; callers treat both as a recoverable per-axis failure.
type Judge interface {
	Evaluate(ctx context.Context, req Request) (Judgment, error)
}
