// Package types defines the shared data structures for candidate/job match evaluation.
package types

import "github.com/google/uuid"

// CandidateProfile holds the candidate inputs for one evaluation.
// The resume text is mandatory; the remaining fields are optional
// pre-extracted facts that take precedence over text parsing.
// A profile is read-only once an evaluation starts.
type CandidateProfile struct {
	ResumeText        string         `json:"resume_text" validate:"required"`
	Skills            []string       `json:"skills,omitempty"`
	YearsExperience   *float64       `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
	Education         EducationLevel `json:"education,omitempty"`
	SalaryExpectation *float64       `json:"salary_expectation,omitempty" validate:"omitempty,gt=0"`
	Location          string         `json:"location,omitempty"`
}

// JobSpecification describes the opening a candidate is evaluated against.
// Title and at least one requirement are mandatory; everything else is
// optional and degrades to a documented default when absent.
type JobSpecification struct {
	Title        string         `json:"title" validate:"required"`
	Company      string         `json:"company"`
	Description  string         `json:"description"`
	Requirements []string       `json:"requirements" validate:"required,min=1,dive,required"`
	Location     string         `json:"location,omitempty"`
	Salary       *float64       `json:"salary,omitempty" validate:"omitempty,gt=0"`
	Industry     string         `json:"industry,omitempty"`
	Culture      string         `json:"culture,omitempty"`
	MinEducation EducationLevel `json:"min_education,omitempty"`
}

// ScoreComponent is one scored axis with its explanation.
// Earned is always within [0, Maximum].
type ScoreComponent struct {
	Name        string  `json:"name"`
	Earned      float64 `json:"earned"`
	Maximum     float64 `json:"maximum"`
	Explanation string  `json:"explanation"`
	// Degraded marks a delegated axis whose evaluation could not be
	// completed and was scored 0 rather than judged.
	Degraded bool `json:"degraded,omitempty"`
}

// Ratio returns Earned/Maximum, or 0 for a zero maximum.
func (c ScoreComponent) Ratio() float64 {
	if c.Maximum <= 0 {
		return 0
	}
	return c.Earned / c.Maximum
}

// GroupName identifies one of the three scoring component groups.
type GroupName string

// The three fixed component groups.
const (
	GroupDeterministic GroupName = "deterministic"
	GroupSemantic      GroupName = "semantic"
	GroupBonus         GroupName = "bonus"
)

// ComponentGroup holds the ordered components of one scoring tier.
type ComponentGroup struct {
	Name       GroupName        `json:"name"`
	Components []ScoreComponent `json:"components"`
	Maximum    float64          `json:"maximum"`
}

// Total returns the sum of earned points across the group's components.
func (g ComponentGroup) Total() float64 {
	total := 0.0
	for _, c := range g.Components {
		total += c.Earned
	}
	return total
}

// Unreliable reports whether every component in the group is degraded,
// meaning the group's contribution carries no delegated judgment at all.
func (g ComponentGroup) Unreliable() bool {
	if len(g.Components) == 0 {
		return false
	}
	for _, c := range g.Components {
		if !c.Degraded {
			return false
		}
	}
	return true
}

// Recommendation is the hiring tier derived from the final match score.
type Recommendation string

// Recommendation tiers, ordered from best to worst.
const (
	StronglyRecommended  Recommendation = "Strongly recommended"
	Recommended          Recommendation = "Recommended"
	ConsiderForInterview Recommendation = "Consider for interview"
	ModerateFit          Recommendation = "Moderate fit"
	NotRecommended       Recommendation = "Not recommended"
)

// MatchResult is the complete outcome of one candidate/job evaluation.
// It is constructed once by the aggregator and never mutated afterwards.
type MatchResult struct {
	EvaluationID       uuid.UUID        `json:"evaluation_id"`
	JobTitle           string           `json:"job_title"`
	Company            string           `json:"company"`
	Salary             *float64         `json:"salary,omitempty"`
	Location           string           `json:"location,omitempty"`
	MatchScore         float64          `json:"match_score"`
	Recommendation     Recommendation   `json:"recommendation"`
	Strengths          []string         `json:"strengths"`
	Weaknesses         []string         `json:"weaknesses"`
	OverallExplanation string           `json:"overall_explanation"`
	Breakdown          []ComponentGroup `json:"score_breakdown"`
}

// Group returns the named component group from the breakdown, or nil.
func (r *MatchResult) Group(name GroupName) *ComponentGroup {
	for i := range r.Breakdown {
		if r.Breakdown[i].Name == name {
			return &r.Breakdown[i]
		}
	}
	return nil
}
