package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AllScoringKeys(t *testing.T) {
	keys := []string{
		"experience-relevance",
		"soft-skills",
		"culture-fit",
		"growth-potential",
		"project-relevance",
		"industry-experience",
		"rare-skills",
		"career-trajectory",
		"overall-narrative",
	}
	for _, key := range keys {
		template, err := Get("scoring.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, template, "key %s", key)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("scoring.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "anything")
	require.Error(t, err)
}

func TestMustGet_PanicsOnMiss(t *testing.T) {
	assert.Panics(t, func() { MustGet("scoring.json", "does-not-exist") })
}

func TestFormat(t *testing.T) {
	result := Format("Score {{.Axis}} out of {{.MaxScore}}. {{.Axis}} matters.", map[string]string{
		"Axis":     "culture fit",
		"MaxScore": "10",
	})
	assert.Equal(t, "Score culture fit out of 10. culture fit matters.", result)
}

func TestFormat_UnknownPlaceholderLeftAlone(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestScoringPrompts_CarryMaxScore(t *testing.T) {
	// Every judged axis prompt must bound its score scale.
	for _, key := range []string{"soft-skills", "culture-fit", "growth-potential", "project-relevance", "industry-experience", "rare-skills", "career-trajectory"} {
		template := MustGet("scoring.json", key)
		assert.Contains(t, template, "{{.MaxScore}}", "key %s", key)
	}
}
