package scoring

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// promptRecorder captures the rendered prompt of every axis call so tests
// can assert what context a judgment was actually given.
type promptRecorder struct {
	mu      sync.Mutex
	prompts map[string]string
}

func (r *promptRecorder) Evaluate(_ context.Context, req llm.Request) (llm.Judgment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.prompts == nil {
		r.prompts = make(map[string]string)
	}
	r.prompts[req.Axis] = req.Prompt
	return llm.Judgment{Score: req.MaxScore / 2, Justification: "ok"}, nil
}

func (r *promptRecorder) prompt(axis string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prompts[axis]
}

func semanticInputs() (*types.CandidateProfile, *types.JobSpecification) {
	candidate := &types.CandidateProfile{
		ResumeText: "Led a team of five engineers. Strong communication record.",
	}
	job := &types.JobSpecification{
		Title:        "Engineering Manager",
		Description:  "Lead a product team.",
		Requirements: []string{"leadership"},
		Culture:      "Fast-paced startup.",
	}
	return candidate, job
}

func TestScoreSemantic_AllAxes(t *testing.T) {
	cfg := DefaultConfig()
	candidate, job := semanticInputs()

	group := scoreSemantic(t.Context(), llm.NewStubJudge(0.8), candidate, job, cfg)

	require.Len(t, group.Components, 4)
	assert.Equal(t, types.GroupSemantic, group.Name)
	assert.Equal(t, cfg.SemanticMax(), group.Maximum)

	names := make([]string, 0, 4)
	for _, c := range group.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{AxisSoftSkills, AxisCultureFit, AxisGrowth, AxisProjects}, names)

	assert.InDelta(t, 0.8*cfg.SemanticMax(), group.Total(), 1e-9)
	assert.False(t, group.Unreliable())
}

func TestScoreSemantic_OutOfRangeScoreClamped(t *testing.T) {
	cfg := DefaultConfig()
	candidate, job := semanticInputs()
	// The stub returns far more than the axis maximum; clamping caps it.
	stub := &llm.StubJudge{DefaultRatio: 0.5, Ratios: map[string]float64{AxisProjects: 200}}

	group := scoreSemantic(t.Context(), stub, candidate, job, cfg)

	for _, c := range group.Components {
		if c.Name == AxisProjects {
			assert.Equal(t, cfg.ProjectRelevanceMax, c.Earned)
		}
	}
}

func TestScoreSemantic_SingleAxisDegrades(t *testing.T) {
	cfg := DefaultConfig()
	candidate, job := semanticInputs()
	stub := &llm.StubJudge{
		DefaultRatio: 1.0,
		Errs:         map[string]error{AxisCultureFit: &llm.UnavailableError{Axis: AxisCultureFit}},
	}

	group := scoreSemantic(t.Context(), stub, candidate, job, cfg)

	require.Len(t, group.Components, 4)
	for _, c := range group.Components {
		if c.Name == AxisCultureFit {
			assert.True(t, c.Degraded)
			assert.Equal(t, 0.0, c.Earned)
			assert.Contains(t, c.Explanation, "provider unavailable")
		} else {
			assert.False(t, c.Degraded)
		}
	}
	assert.False(t, group.Unreliable())
}

func TestScoreSemantic_AllAxesDegraded(t *testing.T) {
	cfg := DefaultConfig()
	candidate, job := semanticInputs()
	stub := &llm.StubJudge{Errs: map[string]error{
		AxisSoftSkills: &llm.UnavailableError{Axis: AxisSoftSkills},
		AxisCultureFit: &llm.UnavailableError{Axis: AxisCultureFit},
		AxisGrowth:     &llm.MalformedError{Axis: AxisGrowth},
		AxisProjects:   &llm.MalformedError{Axis: AxisProjects},
	}}

	group := scoreSemantic(t.Context(), stub, candidate, job, cfg)

	assert.Equal(t, 0.0, group.Total())
	assert.True(t, group.Unreliable())
}

func TestScoreBonus_AllAxes(t *testing.T) {
	cfg := DefaultConfig()
	candidate := &types.CandidateProfile{ResumeText: "Ten years in logistics."}
	job := &types.JobSpecification{
		Title:        "Dispatcher",
		Requirements: []string{"routing"},
		Industry:     "Transportation",
	}

	group := scoreBonus(t.Context(), llm.NewStubJudge(0.5), candidate, job, cfg)

	require.Len(t, group.Components, 3)
	assert.Equal(t, types.GroupBonus, group.Name)
	assert.Equal(t, cfg.BonusMax(), group.Maximum)

	names := make([]string, 0, 3)
	for _, c := range group.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{AxisIndustry, AxisRareSkills, AxisTrajectory}, names)
	assert.InDelta(t, 0.5*cfg.BonusMax(), group.Total(), 1e-9)
}

func TestScoreBonus_RareSkillsPromptCarriesRequirements(t *testing.T) {
	cfg := DefaultConfig()
	recorder := &promptRecorder{}
	candidate := &types.CandidateProfile{ResumeText: "ADR certified long-haul driver."}
	job := &types.JobSpecification{
		Title:        "Truck Driver",
		Description:  "Long-haul routes.",
		Requirements: []string{"commercial driving license", "adr certification"},
	}

	scoreBonus(t.Context(), recorder, candidate, job, cfg)

	// Rarity is judged against the job's actual requirements, so the axis
	// prompt must always embed them.
	prompt := recorder.prompt(AxisRareSkills)
	require.NotEmpty(t, prompt)
	for _, req := range job.Requirements {
		assert.Contains(t, prompt, req)
	}
	assert.Contains(t, prompt, job.Title)
}

func TestScoreBonus_MalformedAxisDegrades(t *testing.T) {
	cfg := DefaultConfig()
	candidate := &types.CandidateProfile{ResumeText: "Ten years in logistics."}
	job := &types.JobSpecification{Title: "Dispatcher", Requirements: []string{"routing"}}
	stub := &llm.StubJudge{
		DefaultRatio: 1.0,
		Errs:         map[string]error{AxisRareSkills: &llm.MalformedError{Axis: AxisRareSkills}},
	}

	group := scoreBonus(t.Context(), stub, candidate, job, cfg)

	for _, c := range group.Components {
		if c.Name == AxisRareSkills {
			assert.True(t, c.Degraded)
			assert.Contains(t, c.Explanation, "could not be parsed")
		}
	}
	assert.InDelta(t, cfg.IndustryMax+cfg.TrajectoryMax, group.Total(), 1e-9)
}
