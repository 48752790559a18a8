package scoring

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// scoreBonus computes the 20-point supplementary component. The rare-skills
// axis always embeds the job requirements in its context so relevance is
// enforced structurally rather than only by instruction.
func scoreBonus(ctx context.Context, judge llm.Judge, candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) types.ComponentGroup {
	resume := truncate(candidate.ResumeText, maxPromptText)
	description := truncate(job.Description, maxPromptText)

	industryContext := ""
	if job.Industry != "" {
		industryContext = "\n\nINDUSTRY: " + job.Industry
	}

	axes := []struct {
		axis      string
		promptKey string
		max       float64
		data      map[string]string
	}{
		{AxisIndustry, "industry-experience", cfg.IndustryMax, map[string]string{
			"JobDescription":  description,
			"IndustryContext": industryContext,
			"ResumeText":      resume,
		}},
		{AxisRareSkills, "rare-skills", cfg.RareSkillsMax, map[string]string{
			"JobTitle":       job.Title,
			"Requirements":   strings.Join(job.Requirements, "; "),
			"JobDescription": description,
			"ResumeText":     resume,
		}},
		{AxisTrajectory, "career-trajectory", cfg.TrajectoryMax, map[string]string{
			"ResumeText": resume,
		}},
	}

	components := make([]types.ScoreComponent, len(axes))
	g, gCtx := errgroup.WithContext(ctx)
	for i, a := range axes {
		g.Go(func() error {
			components[i] = judgeAxis(gCtx, judge, a.axis, a.promptKey, a.data, a.max)
			return nil
		})
	}
	// Join barrier; axis failures are recorded as degraded components.
	_ = g.Wait()

	return types.ComponentGroup{
		Name:       types.GroupBonus,
		Maximum:    cfg.BonusMax(),
		Components: components,
	}
}
