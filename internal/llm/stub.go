package llm

import (
	"context"
	"fmt"
)

// StubJudge is the deterministic Judge adapter. It returns a fixed
// fraction of each axis's maximum, optionally overridden per axis, and is
// used by tests and by the CLI's offline mode.
type StubJudge struct {
	// Ratios overrides the returned score per axis, as earned/max.
	Ratios map[string]float64
	// Errs forces a failure for the named axes.
	Errs map[string]error
	// DefaultRatio applies to axes with no override.
	DefaultRatio float64
}

// NewStubJudge returns a stub that awards the given fraction of every
// axis maximum.
func NewStubJudge(defaultRatio float64) *StubJudge {
	return &StubJudge{DefaultRatio: defaultRatio}
}

// Evaluate returns the configured deterministic judgment for the axis.
func (s *StubJudge) Evaluate(_ context.Context, req Request) (Judgment, error) {
	if err, ok := s.Errs[req.Axis]; ok {
		return Judgment{}, err
	}
	ratio := s.DefaultRatio
	if r, ok := s.Ratios[req.Axis]; ok {
		ratio = r
	}
	return Judgment{
		Score:         ratio * req.MaxScore,
		Justification: fmt.Sprintf("Offline judgment for %s at %.0f%% of maximum.", req.Axis, ratio*100),
	}, nil
}
