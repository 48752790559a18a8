package scoring

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/prompts"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// axisLabels render component names as readable phrases in strengths,
// weaknesses and the overall narrative.
var axisLabels = map[string]string{
	AxisSkills:     "technical skill coverage",
	AxisExperience: "relevant experience",
	AxisEducation:  "educational background",
	AxisSalary:     "salary alignment",
	AxisLocation:   "location fit",
	AxisSoftSkills: "soft skills",
	AxisCultureFit: "culture fit",
	AxisGrowth:     "growth potential",
	AxisProjects:   "project relevance",
	AxisIndustry:   "industry experience",
	AxisRareSkills: "rare skills",
	AxisTrajectory: "career trajectory",
}

// aggregate joins the three component groups into the final MatchResult.
// The match score is computed here once, as the sum of the group totals,
// and nowhere else.
func aggregate(ctx context.Context, judge llm.Judge, id uuid.UUID, job *types.JobSpecification, deterministic, semantic, bonus types.ComponentGroup, cfg Config) *types.MatchResult {
	breakdown := []types.ComponentGroup{deterministic, semantic, bonus}
	matchScore := deterministic.Total() + semantic.Total() + bonus.Total()

	strengths, weaknesses := deriveStrengthsWeaknesses(breakdown, cfg)
	tier := recommendationFor(matchScore, cfg)
	explanation := buildNarrative(ctx, judge, job, breakdown, matchScore, tier, strengths, weaknesses, cfg)

	return &types.MatchResult{
		EvaluationID:       id,
		JobTitle:           job.Title,
		Company:            job.Company,
		Salary:             job.Salary,
		Location:           job.Location,
		MatchScore:         matchScore,
		Recommendation:     tier,
		Strengths:          strengths,
		Weaknesses:         weaknesses,
		OverallExplanation: explanation,
		Breakdown:          breakdown,
	}
}

// recommendationFor maps a match score to its tier. Bounds are inclusive
// at the bottom of each tier, so exactly 85 is strongly recommended.
func recommendationFor(score float64, cfg Config) types.Recommendation {
	switch {
	case score >= cfg.TierStrong:
		return types.StronglyRecommended
	case score >= cfg.TierRecommended:
		return types.Recommended
	case score >= cfg.TierConsider:
		return types.ConsiderForInterview
	case score >= cfg.TierModerate:
		return types.ModerateFit
	default:
		return types.NotRecommended
	}
}

// deriveStrengthsWeaknesses classifies every component by its earned/max
// ratio. The cutoffs are strict: a component exactly at either threshold
// lands in neither list.
func deriveStrengthsWeaknesses(groups []types.ComponentGroup, cfg Config) (strengths, weaknesses []string) {
	strengths = []string{}
	weaknesses = []string{}
	for _, group := range groups {
		for _, c := range group.Components {
			label := componentLabel(c.Name)
			switch {
			case c.Ratio() > cfg.StrengthRatio:
				strengths = append(strengths, fmt.Sprintf("Strong %s (%s/%s points)", label, trimFloat(c.Earned), trimFloat(c.Maximum)))
			case c.Ratio() < cfg.WeaknessRatio:
				weaknesses = append(weaknesses, fmt.Sprintf("Weak %s (%s/%s points)", label, trimFloat(c.Earned), trimFloat(c.Maximum)))
			}
		}
	}
	return strengths, weaknesses
}

// buildNarrative produces the overall explanation. The deterministic
// strategy synthesizes from already-computed text; the delegated strategy
// issues one extra judge call and falls back to the deterministic text on
// failure. Unreliable groups are always called out.
func buildNarrative(ctx context.Context, judge llm.Judge, job *types.JobSpecification, groups []types.ComponentGroup, matchScore float64, tier types.Recommendation, strengths, weaknesses []string, cfg Config) string {
	var unreliable []string
	for _, g := range groups {
		if g.Unreliable() {
			unreliable = append(unreliable, string(g.Name))
		}
	}

	narrative := ""
	if cfg.Narrative == NarrativeDelegated {
		narrative = delegatedNarrative(ctx, judge, job, groups, matchScore)
	}
	if narrative == "" {
		narrative = deterministicNarrative(job, matchScore, tier, strengths, weaknesses)
	}

	if len(unreliable) > 0 {
		narrative += fmt.Sprintf(" Note: the %s component could not be evaluated and its contribution is unreliable.",
			strings.Join(unreliable, " and "))
	}
	return narrative
}

// deterministicNarrative combines existing component text into the final
// explanation without any further delegated call.
func deterministicNarrative(job *types.JobSpecification, matchScore float64, tier types.Recommendation, strengths, weaknesses []string) string {
	quality := "weak"
	switch {
	case matchScore >= 80:
		quality = "excellent"
	case matchScore >= 65:
		quality = "good"
	case matchScore >= 50:
		quality = "moderate"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s match for %s at %s/100: %s.",
		capitalize(quality), job.Title, trimFloat(matchScore), strings.ToLower(string(tier)))
	if len(strengths) > 0 {
		fmt.Fprintf(&b, " Key strengths: %s.", joinClauses(strengths, 2))
	}
	if len(weaknesses) > 0 {
		fmt.Fprintf(&b, " Main gaps: %s.", joinClauses(weaknesses, 2))
	}
	return b.String()
}

// delegatedNarrative asks the judge for the closing narrative. Any failure
// returns empty so the caller falls back to the deterministic text.
func delegatedNarrative(ctx context.Context, judge llm.Judge, job *types.JobSpecification, groups []types.ComponentGroup, matchScore float64) string {
	var summary strings.Builder
	fmt.Fprintf(&summary, "TOTAL SCORE: %s/100\n\nBREAKDOWN:\n", trimFloat(matchScore))
	for _, g := range groups {
		fmt.Fprintf(&summary, "%s: %s/%s\n", g.Name, trimFloat(g.Total()), trimFloat(g.Maximum))
		for _, c := range g.Components {
			fmt.Fprintf(&summary, "  - %s: %s/%s\n", c.Name, trimFloat(c.Earned), trimFloat(c.Maximum))
		}
	}

	template := prompts.MustGet(promptFile, "overall-narrative")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":     job.Title,
		"ScoreSummary": summary.String(),
		"MaxScore":     trimFloat(matchScore),
	})
	judgment, err := judge.Evaluate(ctx, llm.Request{Axis: "overall_narrative", Prompt: prompt, MaxScore: matchScore})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(judgment.Justification)
}

// joinClauses joins up to n clauses, lower-casing the leading qualifier
// so they read naturally inside a sentence.
func joinClauses(clauses []string, n int) string {
	if len(clauses) > n {
		clauses = clauses[:n]
	}
	lowered := make([]string, len(clauses))
	for i, c := range clauses {
		if len(c) > 0 {
			lowered[i] = strings.ToLower(c[:1]) + c[1:]
		}
	}
	return strings.Join(lowered, "; ")
}

// capitalize upper-cases the first letter of an ASCII phrase.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// componentLabel resolves the readable phrase for a component name.
func componentLabel(name string) string {
	if label, ok := axisLabels[name]; ok {
		return label
	}
	return strings.ReplaceAll(name, "_", " ")
}

// sortedAxisNames is used by tests to assert full label coverage.
func sortedAxisNames() []string {
	names := make([]string, 0, len(axisLabels))
	for name := range axisLabels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
