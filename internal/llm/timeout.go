package llm

import (
	"context"
	"time"
)

// timeoutJudge bounds every delegated call of the wrapped judge.
type timeoutJudge struct {
	inner   Judge
	timeout time.Duration
}

// WithCallTimeout wraps a judge so each Evaluate call runs under its own
// deadline. A zero or negative timeout returns the judge unchanged.
func WithCallTimeout(judge Judge, timeout time.Duration) Judge {
	if timeout <= 0 {
		return judge
	}
	return &timeoutJudge{inner: judge, timeout: timeout}
}

func (t *timeoutJudge) Evaluate(ctx context.Context, req Request) (Judgment, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	judgment, err := t.inner.Evaluate(ctx, req)
	if err != nil {
		// A deadline hit inside the provider is an availability failure.
		if ctx.Err() != nil && !IsRecoverable(err) {
			return Judgment{}, &UnavailableError{Axis: req.Axis, Cause: ctx.Err()}
		}
		return Judgment{}, err
	}
	return judgment, nil
}
