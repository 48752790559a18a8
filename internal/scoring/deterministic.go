package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/MatSouesme/LLM-TsaeChienne/internal/llm"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/prompts"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/skills"
	"github.com/MatSouesme/LLM-TsaeChienne/internal/types"
)

// scoreDeterministic computes the 40-point rule-based component. All five
// axes are pure arithmetic except experience relevance, which issues the
// group's single delegated call.
func scoreDeterministic(ctx context.Context, judge llm.Judge, f *facts, candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) types.ComponentGroup {
	return types.ComponentGroup{
		Name:    types.GroupDeterministic,
		Maximum: cfg.DeterministicMax(),
		Components: []types.ScoreComponent{
			scoreSkills(f, candidate, job, cfg),
			scoreExperience(ctx, judge, f, candidate, job, cfg),
			scoreEducation(f, cfg),
			scoreSalary(candidate, job, cfg),
			scoreLocation(candidate, job, cfg),
		},
	}
}

// scoreSkills matches hard requirements against the candidate's skills and
// resume text. Coverage earns up to SkillsBaseMax; relevant skills beyond
// the requirements earn a capped bonus. Soft-skill requirements are
// excluded here and scored by the semantic component.
func scoreSkills(f *facts, candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) types.ScoreComponent {
	bonusCap := cfg.SkillsMax - cfg.SkillsBaseMax

	if len(f.hardReqs) == 0 {
		explanation := "No hard skill requirements stated; full credit."
		if len(f.softReqs) > 0 {
			explanation = "All stated requirements are soft skills (scored by the semantic component); full credit on this axis."
		}
		return types.ScoreComponent{
			Name:        AxisSkills,
			Earned:      cfg.SkillsMax,
			Maximum:     cfg.SkillsMax,
			Explanation: explanation,
		}
	}

	report := skills.MatchSets(f.candidateSkills, f.hardReqs)

	// Requirements with no set-level match may still be evidenced in the
	// resume text; count those as matched too.
	var matched []string
	for _, m := range report.Matched {
		matched = append(matched, m.Requirement)
	}
	var missing []string
	for _, req := range report.UnmatchedRequirements {
		if skills.MatchText(req, candidate.ResumeText) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	coverage := float64(len(matched)) / float64(len(f.hardReqs))
	earned := coverage * cfg.SkillsBaseMax

	// Extra candidate skills count only when the job text mentions them.
	jobText := strings.ToLower(job.Title + " " + job.Description)
	relevantExtras := 0
	for _, extra := range report.ExtraSkills {
		if strings.Contains(jobText, extra) {
			relevantExtras++
		}
	}
	bonus := clamp(float64(relevantExtras)*cfg.SkillsBonusPerExtra, 0, bonusCap)
	earned = clamp(earned+bonus, 0, cfg.SkillsMax)

	explanation := fmt.Sprintf("%d/%d required skills matched", len(matched), len(f.hardReqs))
	if len(matched) > 0 {
		explanation += fmt.Sprintf(". Matched: %s", strings.Join(capList(matched, 5), ", "))
	}
	if len(missing) > 0 {
		explanation += fmt.Sprintf(". Missing: %s", strings.Join(capList(missing, 3), ", "))
	}
	if relevantExtras > 0 {
		explanation += fmt.Sprintf(". %d additional relevant skills beyond requirements", relevantExtras)
	}
	explanation += "."

	return types.ScoreComponent{
		Name:        AxisSkills,
		Earned:      earned,
		Maximum:     cfg.SkillsMax,
		Explanation: explanation,
	}
}

// scoreExperience scales parsed tenure by a delegated relevance fraction,
// capped at the job-implied years. An unusable judgment falls back to full
// relevance over the parsed tenure, marked degraded.
func scoreExperience(ctx context.Context, judge llm.Judge, f *facts, candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) types.ScoreComponent {
	data := map[string]string{
		"JobTitle":       job.Title,
		"Requirements":   strings.Join(job.Requirements, "; "),
		"JobDescription": truncate(job.Description, maxPromptText),
		"ResumeText":     truncate(candidate.ResumeText, maxPromptText),
	}
	prompt := prompts.Format(prompts.MustGet(promptFile, "experience-relevance"), data)

	judgment, err := judge.Evaluate(ctx, llm.Request{
		Axis:     AxisExperience,
		Prompt:   prompt,
		MaxScore: 1,
	})

	relevance := 1.0
	note := ""
	degraded := false
	if err != nil {
		degraded = true
		note = " Relevance could not be evaluated; total tenure counted."
	} else {
		relevance = clamp(judgment.Score, 0, 1)
		if strings.TrimSpace(judgment.Justification) != "" {
			note = " " + strings.TrimSpace(judgment.Justification)
		}
	}

	counted := f.years
	if counted > f.requiredYears {
		counted = f.requiredYears
	}
	earned := 0.0
	if f.requiredYears > 0 {
		earned = clamp(counted/f.requiredYears*relevance*cfg.ExperienceMax, 0, cfg.ExperienceMax)
	}

	explanation := fmt.Sprintf("%s years of experience against %s required, relevance %.0f%%.%s",
		trimFloat(f.years), trimFloat(f.requiredYears), relevance*100, note)

	return types.ScoreComponent{
		Name:        AxisExperience,
		Earned:      earned,
		Maximum:     cfg.ExperienceMax,
		Explanation: explanation,
		Degraded:    degraded,
	}
}

// scoreEducation compares the detected level with the job's stated
// minimum. One ordinal step below earns partial credit; two or more earn
// nothing. An unstated minimum is no constraint.
func scoreEducation(f *facts, cfg Config) types.ScoreComponent {
	if !f.educationStated {
		return types.ScoreComponent{
			Name:        AxisEducation,
			Earned:      cfg.EducationMax,
			Maximum:     cfg.EducationMax,
			Explanation: "No minimum education stated; full credit.",
		}
	}

	candidateRank := f.education.Rank()
	if candidateRank < 0 {
		candidateRank = types.EducationNone.Rank()
	}
	steps := f.minEducation.Rank() - candidateRank

	var earned float64
	var explanation string
	switch {
	case steps <= 0:
		earned = cfg.EducationMax
		explanation = fmt.Sprintf("Education (%s) meets the %s minimum.", levelLabel(f.education), f.minEducation)
	case steps == 1:
		earned = cfg.EducationMax * (1 - cfg.EducationStepPenalty)
		explanation = fmt.Sprintf("Education (%s) is one level below the %s minimum.", levelLabel(f.education), f.minEducation)
	default:
		earned = 0
		explanation = fmt.Sprintf("Education (%s) is %d levels below the %s minimum.", levelLabel(f.education), steps, f.minEducation)
	}

	return types.ScoreComponent{
		Name:        AxisEducation,
		Earned:      earned,
		Maximum:     cfg.EducationMax,
		Explanation: explanation,
	}
}

// scoreSalary awards full points unless both sides state a number and the
// expectation exceeds the offer; the penalty grows linearly to zero at the
// configured gap threshold.
func scoreSalary(candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) types.ScoreComponent {
	if job.Salary == nil || candidate.SalaryExpectation == nil {
		return types.ScoreComponent{
			Name:        AxisSalary,
			Earned:      cfg.SalaryMax,
			Maximum:     cfg.SalaryMax,
			Explanation: "No salary constraint expressed; full credit.",
		}
	}

	offer := *job.Salary
	expectation := *candidate.SalaryExpectation
	gap := (expectation - offer) / offer

	if gap <= 0 {
		return types.ScoreComponent{
			Name:        AxisSalary,
			Earned:      cfg.SalaryMax,
			Maximum:     cfg.SalaryMax,
			Explanation: fmt.Sprintf("Offer meets or exceeds the expectation (%.0f%% margin).", -gap*100),
		}
	}

	earned := clamp((1-gap/cfg.SalaryGapThreshold)*cfg.SalaryMax, 0, cfg.SalaryMax)
	explanation := fmt.Sprintf("Expectation exceeds the offer by %.0f%%.", gap*100)
	if earned == 0 {
		explanation = fmt.Sprintf("Expectation exceeds the offer by %.0f%%, beyond the %.0f%% tolerance.", gap*100, cfg.SalaryGapThreshold*100)
	}
	return types.ScoreComponent{
		Name:        AxisSalary,
		Earned:      earned,
		Maximum:     cfg.SalaryMax,
		Explanation: explanation,
	}
}

// scoreLocation gives full credit for remote roles, exact matches, or when
// either side states no location; region overlap earns partial credit.
func scoreLocation(candidate *types.CandidateProfile, job *types.JobSpecification, cfg Config) types.ScoreComponent {
	jobLoc := strings.ToLower(strings.TrimSpace(job.Location))
	candLoc := strings.ToLower(strings.TrimSpace(candidate.Location))

	switch {
	case jobLoc == "" || candLoc == "":
		return types.ScoreComponent{
			Name:        AxisLocation,
			Earned:      cfg.LocationMax,
			Maximum:     cfg.LocationMax,
			Explanation: "No location constraint expressed; full credit.",
		}
	case strings.Contains(jobLoc, "remote") || strings.Contains(jobLoc, "télétravail"):
		return types.ScoreComponent{
			Name:        AxisLocation,
			Earned:      cfg.LocationMax,
			Maximum:     cfg.LocationMax,
			Explanation: "Remote role; location is no constraint.",
		}
	case jobLoc == candLoc || strings.Contains(jobLoc, candLoc) || strings.Contains(candLoc, jobLoc):
		return types.ScoreComponent{
			Name:        AxisLocation,
			Earned:      cfg.LocationMax,
			Maximum:     cfg.LocationMax,
			Explanation: "Candidate and job locations match.",
		}
	case sharesRegion(jobLoc, candLoc):
		return types.ScoreComponent{
			Name:        AxisLocation,
			Earned:      cfg.LocationMax * cfg.LocationRegionRatio,
			Maximum:     cfg.LocationMax,
			Explanation: "Same region but not the same city.",
		}
	default:
		return types.ScoreComponent{
			Name:        AxisLocation,
			Earned:      0,
			Maximum:     cfg.LocationMax,
			Explanation: "Locations differ and the role is on-site.",
		}
	}
}

// sharesRegion checks for a common comma-separated segment, e.g. the
// country in "Lyon, France" and "Paris, France".
func sharesRegion(a, b string) bool {
	for _, segA := range strings.Split(a, ",") {
		segA = strings.TrimSpace(segA)
		if segA == "" {
			continue
		}
		for _, segB := range strings.Split(b, ",") {
			if segA == strings.TrimSpace(segB) {
				return true
			}
		}
	}
	return false
}

// capList truncates a list for explanation text.
func capList(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// levelLabel renders an education level for explanations.
func levelLabel(l types.EducationLevel) string {
	if !l.Known() {
		return "not detected"
	}
	return string(l)
}
