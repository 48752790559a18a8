package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/prompts"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// Axis names, used both as ScoreComponent names and as judge request axes.
const (
	AxisSkills     = "skills_matching"
	AxisExperience = "experience_years"
	AxisEducation  = "education_match"
	AxisSalary     = "salary_fit"
	AxisLocation   = "location_match"

	AxisSoftSkills = "soft_skills"
	AxisCultureFit = "culture_fit"
	AxisGrowth     = "growth_potential"
	AxisProjects   = "project_relevance"

	AxisIndustry   = "industry_experience"
	AxisRareSkills = "rare_skills"
	AxisTrajectory = "career_trajectory"
)

// promptFile is the embedded template file holding all judge prompts.
const promptFile = "scoring.json"

// maxPromptText caps how much resume or description text is embedded in a
// single prompt.
const maxPromptText = 6000

// judgeAxis issues one delegated call for an axis and converts the outcome
// into a ScoreComponent. Provider failures and malformed payloads degrade
// to a zero score with an explanation; out-of-range scores are clamped.
func judgeAxis(ctx context.Context, judge llm.Judge, axis, promptKey string, data map[string]string, max float64) types.ScoreComponent {
	template := prompts.MustGet(promptFile, promptKey)
	data["MaxScore"] = trimFloat(max)
	prompt := prompts.Format(template, data)

	judgment, err := judge.Evaluate(ctx, llm.Request{Axis: axis, Prompt: prompt, MaxScore: max})
	if err != nil {
		return degradedComponent(axis, max, err)
	}

	earned := clamp(judgment.Score, 0, max)
	explanation := strings.TrimSpace(judgment.Justification)
	if explanation == "" {
		explanation = fmt.Sprintf("Scored %s/%s on %s.", trimFloat(earned), trimFloat(max), axis)
	}
	return types.ScoreComponent{
		Name:        axis,
		Earned:      earned,
		Maximum:     max,
		Explanation: explanation,
	}
}

// degradedComponent builds the zero-score component recorded when an
// axis's delegated evaluation fails. Both failure kinds degrade the same
// way; the explanation names the kind for the reader.
func degradedComponent(axis string, max float64, err error) types.ScoreComponent {
	reason := "evaluation failed"
	var unavailable *llm.UnavailableError
	var malformed *llm.MalformedError
	switch {
	case errors.As(err, &unavailable):
		reason = "evaluation provider unavailable"
	case errors.As(err, &malformed):
		reason = "evaluation response could not be parsed"
	}
	return types.ScoreComponent{
		Name:        axis,
		Earned:      0,
		Maximum:     max,
		Explanation: fmt.Sprintf("The %s evaluation could not be completed (%s); scored 0.", axis, reason),
		Degraded:    true,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// trimFloat renders a float without trailing zeros, e.g. 15 not 15.00.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// truncate caps text embedded into prompts.
func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
