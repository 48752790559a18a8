// Package scoring implements the hybrid candidate/job match scoring core:
// a deterministic rule component, two delegated-judgment components, and
// the aggregation that turns them into an explained 100-point result.
package scoring

import "time"

// NarrativeStrategy selects how the overall explanation is produced.
type NarrativeStrategy string

// Narrative strategies. Deterministic synthesis keeps the aggregation
// layer reproducible; the delegated strategy issues one extra judge call.
const (
	NarrativeDeterministic NarrativeStrategy = "deterministic"
	NarrativeDelegated     NarrativeStrategy = "delegated"
)

// Config holds every tunable threshold of the scoring core. All values
// are injected so boundary behavior can be tested exactly.
type Config struct {
	// Deterministic component maxima (sum 40).
	SkillsMax     float64
	ExperienceMax float64
	EducationMax  float64
	SalaryMax     float64
	LocationMax   float64

	// SkillsBaseMax is the portion of SkillsMax earned by requirement
	// coverage; the remainder is the extra-skill bonus cap.
	SkillsBaseMax float64
	// SkillsBonusPerExtra is awarded per relevant skill beyond the
	// requirements, up to SkillsMax - SkillsBaseMax.
	SkillsBonusPerExtra float64

	// Semantic component maxima (sum 40).
	SoftSkillsMax       float64
	CultureFitMax       float64
	GrowthPotentialMax  float64
	ProjectRelevanceMax float64

	// Bonus component maxima (sum 20).
	IndustryMax   float64
	RareSkillsMax float64
	TrajectoryMax float64

	// SalaryGapThreshold is the relative expectation overshoot at which
	// the salary axis reaches zero.
	SalaryGapThreshold float64
	// LocationRegionRatio is the credit for a region-level match.
	LocationRegionRatio float64
	// EducationStepPenalty is the credit lost per ordinal level the
	// candidate sits below the requirement; two levels below scores zero.
	EducationStepPenalty float64

	// Default required tenure when the job states none, and the
	// title-based overrides.
	DefaultRequiredYears float64
	SeniorRequiredYears  float64
	JuniorRequiredYears  float64

	// Strength/weakness cutoffs on a component's earned/maximum ratio.
	// Strict inequalities: a ratio exactly at a cutoff is in neither list.
	StrengthRatio float64
	WeaknessRatio float64

	// Recommendation tier lower bounds, inclusive.
	TierStrong      float64
	TierRecommended float64
	TierConsider    float64
	TierModerate    float64

	// JudgeTimeout bounds each delegated call.
	JudgeTimeout time.Duration

	// Narrative selects the overall-explanation strategy.
	Narrative NarrativeStrategy
}

// DefaultConfig returns the standard 100-point configuration.
func DefaultConfig() Config {
	return Config{
		SkillsMax:     15,
		ExperienceMax: 10,
		EducationMax:  5,
		SalaryMax:     5,
		LocationMax:   5,

		SkillsBaseMax:       12,
		SkillsBonusPerExtra: 0.5,

		SoftSkillsMax:       15,
		CultureFitMax:       10,
		GrowthPotentialMax:  10,
		ProjectRelevanceMax: 5,

		IndustryMax:   10,
		RareSkillsMax: 5,
		TrajectoryMax: 5,

		SalaryGapThreshold:   0.30,
		LocationRegionRatio:  0.6,
		EducationStepPenalty: 0.5,

		DefaultRequiredYears: 3,
		SeniorRequiredYears:  5,
		JuniorRequiredYears:  1,

		StrengthRatio: 0.8,
		WeaknessRatio: 0.6,

		TierStrong:      85,
		TierRecommended: 75,
		TierConsider:    65,
		TierModerate:    50,

		JudgeTimeout: 30 * time.Second,

		Narrative: NarrativeDeterministic,
	}
}

// DeterministicMax returns the deterministic group maximum.
func (c Config) DeterministicMax() float64 {
	return c.SkillsMax + c.ExperienceMax + c.EducationMax + c.SalaryMax + c.LocationMax
}

// SemanticMax returns the semantic group maximum.
func (c Config) SemanticMax() float64 {
	return c.SoftSkillsMax + c.CultureFitMax + c.GrowthPotentialMax + c.ProjectRelevanceMax
}

// BonusMax returns the bonus group maximum.
func (c Config) BonusMax() float64 {
	return c.IndustryMax + c.RareSkillsMax + c.TrajectoryMax
}
