package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreComponent_Ratio(t *testing.T) {
	assert.Equal(t, 0.8, ScoreComponent{Earned: 12, Maximum: 15}.Ratio())
	assert.Equal(t, 0.0, ScoreComponent{Earned: 5, Maximum: 0}.Ratio())
}

func TestComponentGroup_Total(t *testing.T) {
	group := ComponentGroup{Components: []ScoreComponent{
		{Earned: 12.5},
		{Earned: 7.5},
		{Earned: 0},
	}}
	assert.Equal(t, 20.0, group.Total())
	assert.Equal(t, 0.0, ComponentGroup{}.Total())
}

func TestComponentGroup_Unreliable(t *testing.T) {
	allDegraded := ComponentGroup{Components: []ScoreComponent{
		{Degraded: true}, {Degraded: true},
	}}
	assert.True(t, allDegraded.Unreliable())

	partlyDegraded := ComponentGroup{Components: []ScoreComponent{
		{Degraded: true}, {Degraded: false},
	}}
	assert.False(t, partlyDegraded.Unreliable())

	// An empty group never carried a judgment to lose.
	assert.False(t, ComponentGroup{}.Unreliable())
}

func TestMatchResult_Group(t *testing.T) {
	result := &MatchResult{Breakdown: []ComponentGroup{
		{Name: GroupDeterministic},
		{Name: GroupSemantic},
		{Name: GroupBonus},
	}}

	group := result.Group(GroupSemantic)
	require.NotNil(t, group)
	assert.Equal(t, GroupSemantic, group.Name)

	assert.Nil(t, result.Group(GroupName("nope")))
}
