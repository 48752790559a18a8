package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_GroupMaxima(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 40.0, cfg.DeterministicMax())
	assert.Equal(t, 40.0, cfg.SemanticMax())
	assert.Equal(t, 20.0, cfg.BonusMax())
	assert.Equal(t, 100.0, cfg.DeterministicMax()+cfg.SemanticMax()+cfg.BonusMax())
}

func TestDefaultConfig_SkillsSplit(t *testing.T) {
	cfg := DefaultConfig()

	// Coverage credit plus the extra-skill bonus cap span the full axis.
	assert.Equal(t, cfg.SkillsMax, cfg.SkillsBaseMax+3)
	assert.Greater(t, cfg.SkillsBonusPerExtra, 0.0)
}

func TestDefaultConfig_TierOrdering(t *testing.T) {
	cfg := DefaultConfig()

	assert.Greater(t, cfg.TierStrong, cfg.TierRecommended)
	assert.Greater(t, cfg.TierRecommended, cfg.TierConsider)
	assert.Greater(t, cfg.TierConsider, cfg.TierModerate)
	assert.Greater(t, cfg.StrengthRatio, cfg.WeaknessRatio)
}
