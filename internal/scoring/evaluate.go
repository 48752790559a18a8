package scoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// evaluationNamespace seeds the deterministic evaluation IDs, so identical
// inputs always produce the same MatchResult byte for byte.
var evaluationNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Evaluator is the top-level entry point of the scoring core. It is
// stateless per call; one Evaluator can run concurrent evaluations.
type Evaluator struct {
	judge    llm.Judge
	cfg      Config
	logger   *zap.Logger
	validate *validator.Validate
}

// Option customizes an Evaluator.
type Option func(*Evaluator)

// WithConfig replaces the default scoring configuration.
func WithConfig(cfg Config) Option {
	return func(e *Evaluator) { e.cfg = cfg }
}

// WithLogger attaches a logger; the default is a no-op logger so library
// use stays quiet.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// NewEvaluator builds an Evaluator around the given judge capability.
func NewEvaluator(judge llm.Judge, opts ...Option) *Evaluator {
	e := &Evaluator{
		judge:    judge,
		cfg:      DefaultConfig(),
		logger:   zap.NewNop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.judge = llm.WithCallTimeout(e.judge, e.cfg.JudgeTimeout)
	return e
}

// Evaluate scores one candidate against one job and returns the fully
// explained result. Only structurally invalid input fails the call;
// delegated-judgment failures degrade the affected axes instead.
func (e *Evaluator) Evaluate(ctx context.Context, candidate *types.CandidateProfile, job *types.JobSpecification) (*types.MatchResult, error) {
	if candidate == nil {
		return nil, &InvalidCandidateError{Cause: fmt.Errorf("candidate profile is nil")}
	}
	if job == nil {
		return nil, &InvalidJobError{Cause: fmt.Errorf("job specification is nil")}
	}
	if err := e.validate.Struct(candidate); err != nil {
		return nil, &InvalidCandidateError{Cause: err}
	}
	if err := e.validate.Struct(job); err != nil {
		return nil, &InvalidJobError{Cause: err}
	}

	f := extractFacts(candidate, job, e.cfg)
	e.logger.Debug("extracted facts",
		zap.Float64("years", f.years),
		zap.Float64("required_years", f.requiredYears),
		zap.Int("hard_requirements", len(f.hardReqs)),
		zap.Int("soft_requirements", len(f.softReqs)),
	)

	// The three scorers share only read-only inputs and the fact cache,
	// so they fan out freely; the wait is the aggregation barrier.
	var deterministic, semantic, bonus types.ComponentGroup
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deterministic = scoreDeterministic(gCtx, e.judge, f, candidate, job, e.cfg)
		return nil
	})
	g.Go(func() error {
		semantic = scoreSemantic(gCtx, e.judge, candidate, job, e.cfg)
		return nil
	})
	g.Go(func() error {
		bonus = scoreBonus(gCtx, e.judge, candidate, job, e.cfg)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("components scored",
		zap.Float64("deterministic", deterministic.Total()),
		zap.Float64("semantic", semantic.Total()),
		zap.Float64("bonus", bonus.Total()),
	)

	result := aggregate(ctx, e.judge, evaluationID(candidate, job), job, deterministic, semantic, bonus, e.cfg)
	e.logger.Info("evaluation complete",
		zap.String("evaluation_id", result.EvaluationID.String()),
		zap.Float64("match_score", result.MatchScore),
		zap.String("recommendation", string(result.Recommendation)),
	)
	return result, nil
}

// evaluationID derives a stable ID from the evaluation inputs. Identical
// candidate/job pairs yield identical IDs, keeping results reproducible.
func evaluationID(candidate *types.CandidateProfile, job *types.JobSpecification) uuid.UUID {
	payload, err := json.Marshal(struct {
		Candidate *types.CandidateProfile `json:"candidate"`
		Job       *types.JobSpecification `json:"job"`
	}{candidate, job})
	if err != nil {
		// Marshal of plain structs cannot fail; keep a stable fallback.
		payload = []byte(job.Title)
	}
	return uuid.NewSHA1(evaluationNamespace, payload)
}
