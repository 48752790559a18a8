package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

func TestRecommendationFor_Boundaries(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		score    float64
		expected types.Recommendation
	}{
		{100, types.StronglyRecommended},
		{85, types.StronglyRecommended},
		{84.99, types.Recommended},
		{75, types.Recommended},
		{74.99, types.ConsiderForInterview},
		{65, types.ConsiderForInterview},
		{64.99, types.ModerateFit},
		{50, types.ModerateFit},
		{49.99, types.NotRecommended},
		{0, types.NotRecommended},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, recommendationFor(tt.score, cfg), "score %.2f", tt.score)
	}
}

func TestDeriveStrengthsWeaknesses(t *testing.T) {
	cfg := DefaultConfig()
	groups := []types.ComponentGroup{{
		Name: types.GroupDeterministic,
		Components: []types.ScoreComponent{
			{Name: AxisSkills, Earned: 14, Maximum: 15},    // 0.93 -> strength
			{Name: AxisExperience, Earned: 8, Maximum: 10}, // exactly 0.8 -> neither
			{Name: AxisEducation, Earned: 3, Maximum: 5},   // exactly 0.6 -> neither
			{Name: AxisSalary, Earned: 2, Maximum: 5},      // 0.4 -> weakness
		},
	}}

	strengths, weaknesses := deriveStrengthsWeaknesses(groups, cfg)

	require.Len(t, strengths, 1)
	assert.Contains(t, strengths[0], "technical skill coverage")
	assert.Contains(t, strengths[0], "14/15")
	require.Len(t, weaknesses, 1)
	assert.Contains(t, weaknesses[0], "salary alignment")
}

func TestDeriveStrengthsWeaknesses_EmptyNotNil(t *testing.T) {
	strengths, weaknesses := deriveStrengthsWeaknesses(nil, DefaultConfig())
	assert.NotNil(t, strengths)
	assert.NotNil(t, weaknesses)
	assert.Empty(t, strengths)
	assert.Empty(t, weaknesses)
}

func TestAxisLabels_CoverAllAxes(t *testing.T) {
	expected := []string{
		AxisTrajectory, AxisCultureFit, AxisEducation, AxisExperience,
		AxisGrowth, AxisIndustry, AxisLocation, AxisProjects,
		AxisRareSkills, AxisSalary, AxisSkills, AxisSoftSkills,
	}
	assert.ElementsMatch(t, expected, sortedAxisNames())
}

func TestComponentLabel_FallbackForUnknown(t *testing.T) {
	assert.Equal(t, "some new axis", componentLabel("some_new_axis"))
	assert.Equal(t, "culture fit", componentLabel(AxisCultureFit))
}

func testGroups(detRatio, semRatio, bonusRatio float64) (types.ComponentGroup, types.ComponentGroup, types.ComponentGroup) {
	cfg := DefaultConfig()
	det := types.ComponentGroup{
		Name:    types.GroupDeterministic,
		Maximum: cfg.DeterministicMax(),
		Components: []types.ScoreComponent{
			{Name: AxisSkills, Earned: detRatio * cfg.SkillsMax, Maximum: cfg.SkillsMax},
			{Name: AxisExperience, Earned: detRatio * cfg.ExperienceMax, Maximum: cfg.ExperienceMax},
			{Name: AxisEducation, Earned: detRatio * cfg.EducationMax, Maximum: cfg.EducationMax},
			{Name: AxisSalary, Earned: detRatio * cfg.SalaryMax, Maximum: cfg.SalaryMax},
			{Name: AxisLocation, Earned: detRatio * cfg.LocationMax, Maximum: cfg.LocationMax},
		},
	}
	sem := types.ComponentGroup{
		Name:    types.GroupSemantic,
		Maximum: cfg.SemanticMax(),
		Components: []types.ScoreComponent{
			{Name: AxisSoftSkills, Earned: semRatio * cfg.SoftSkillsMax, Maximum: cfg.SoftSkillsMax},
			{Name: AxisCultureFit, Earned: semRatio * cfg.CultureFitMax, Maximum: cfg.CultureFitMax},
			{Name: AxisGrowth, Earned: semRatio * cfg.GrowthPotentialMax, Maximum: cfg.GrowthPotentialMax},
			{Name: AxisProjects, Earned: semRatio * cfg.ProjectRelevanceMax, Maximum: cfg.ProjectRelevanceMax},
		},
	}
	bonus := types.ComponentGroup{
		Name:    types.GroupBonus,
		Maximum: cfg.BonusMax(),
		Components: []types.ScoreComponent{
			{Name: AxisIndustry, Earned: bonusRatio * cfg.IndustryMax, Maximum: cfg.IndustryMax},
			{Name: AxisRareSkills, Earned: bonusRatio * cfg.RareSkillsMax, Maximum: cfg.RareSkillsMax},
			{Name: AxisTrajectory, Earned: bonusRatio * cfg.TrajectoryMax, Maximum: cfg.TrajectoryMax},
		},
	}
	return det, sem, bonus
}

func TestAggregate_ScoreIsSumOfGroups(t *testing.T) {
	cfg := DefaultConfig()
	det, sem, bonus := testGroups(0.9, 0.7, 0.5)
	job := &types.JobSpecification{Title: "Driver", Requirements: []string{"hgv"}}
	id := uuid.New()

	result := aggregate(t.Context(), llm.NewStubJudge(0.5), id, job, det, sem, bonus, cfg)

	assert.Equal(t, id, result.EvaluationID)
	assert.Equal(t, "Driver", result.JobTitle)
	assert.InDelta(t, det.Total()+sem.Total()+bonus.Total(), result.MatchScore, 1e-9)
	require.Len(t, result.Breakdown, 3)
	assert.NotEmpty(t, result.OverallExplanation)
}

func TestAggregate_UnreliableGroupNoted(t *testing.T) {
	cfg := DefaultConfig()
	det, sem, bonus := testGroups(0.9, 0, 0.5)
	for i := range sem.Components {
		sem.Components[i].Degraded = true
	}
	job := &types.JobSpecification{Title: "Driver", Requirements: []string{"hgv"}}

	result := aggregate(t.Context(), llm.NewStubJudge(0.5), uuid.New(), job, det, sem, bonus, cfg)

	assert.Contains(t, result.OverallExplanation, "semantic component could not be evaluated")
}

func TestBuildNarrative_DelegatedFallsBackOnError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Narrative = NarrativeDelegated
	det, sem, bonus := testGroups(0.9, 0.9, 0.9)
	job := &types.JobSpecification{Title: "Driver", Requirements: []string{"hgv"}}
	stub := &llm.StubJudge{Errs: map[string]error{
		"overall_narrative": &llm.UnavailableError{Axis: "overall_narrative"},
	}}

	narrative := buildNarrative(t.Context(), stub, job, []types.ComponentGroup{det, sem, bonus},
		90, types.StronglyRecommended, []string{"Strong technical skill coverage (14/15 points)"}, nil, cfg)

	// The deterministic synthesis takes over.
	assert.Contains(t, narrative, "Driver")
	assert.Contains(t, narrative, "90/100")
}

func TestDeterministicNarrative_Quality(t *testing.T) {
	job := &types.JobSpecification{Title: "Driver", Requirements: []string{"hgv"}}
	tests := []struct {
		score    float64
		expected string
	}{
		{90, "Excellent"},
		{70, "Good"},
		{55, "Moderate"},
		{30, "Weak"},
	}
	for _, tt := range tests {
		narrative := deterministicNarrative(job, tt.score, recommendationFor(tt.score, DefaultConfig()), nil, nil)
		assert.Contains(t, narrative, tt.expected, "score %.0f", tt.score)
	}
}

func TestJoinClauses(t *testing.T) {
	joined := joinClauses([]string{"Strong skills (14/15 points)", "Strong fit (9/10 points)", "Strong x"}, 2)
	assert.Equal(t, "strong skills (14/15 points); strong fit (9/10 points)", joined)
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "15", trimFloat(15))
	assert.Equal(t, "7.5", trimFloat(7.5))
	assert.Equal(t, "3.33", trimFloat(10.0/3))
	assert.Equal(t, "0", trimFloat(0))
}
