package scoring

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// scoreSemantic computes the 40-point delegated component. The four axis
// calls are independent and run concurrently; each catches its own failure
// and degrades in place, so the group always carries all four components.
func scoreSemantic(ctx context.Context, judge llm.Judge, candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) types.ComponentGroup {
	resume := truncate(candidate.ResumeText, maxPromptText)
	description := truncate(job.Description, maxPromptText)

	cultureContext := ""
	if job.Culture != "" {
		cultureContext = "\n\nCOMPANY CULTURE:\n" + job.Culture
	}

	axes := []struct {
		axis      string
		promptKey string
		max       float64
		data      map[string]string
	}{
		{AxisSoftSkills, "soft-skills", cfg.SoftSkillsMax, map[string]string{
			"JobTitle":       job.Title,
			"JobDescription": description,
			"ResumeText":     resume,
		}},
		{AxisCultureFit, "culture-fit", cfg.CultureFitMax, map[string]string{
			"JobDescription": description,
			"CultureContext": cultureContext,
			"ResumeText":     resume,
		}},
		{AxisGrowth, "growth-potential", cfg.GrowthPotentialMax, map[string]string{
			"JobTitle":   job.Title,
			"ResumeText": resume,
		}},
		{AxisProjects, "project-relevance", cfg.ProjectRelevanceMax, map[string]string{
			"JobDescription": description,
			"ResumeText":     resume,
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
	// Tasks never return errors; the group is a join barrier.
	_ = g.Wait()

	return types.ComponentGroup{
		Name:       types.GroupSemantic,
		Maximum:    cfg.SemanticMax(),
		Components: components,
	}
}

