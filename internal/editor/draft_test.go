package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/strength-log/internal/domain"
)

func TestNewProgramDraftShapes(t *testing.T) {
	simple := NewProgramDraft(domain.ProgramSimple)
	assert.Len(t, simple.Weeks, 1)
	assert.Empty(t, simple.Phases)

	alternating := NewProgramDraft(domain.ProgramAlternating)
	assert.Len(t, alternating.Weeks, 2)

	advanced := NewProgramDraft(domain.ProgramAdvanced)
	assert.Empty(t, advanced.Weeks)
	require.Len(t, advanced.Phases, 1)
	assert.Len(t, advanced.Phases[0].Weeks, 1)
}

func TestNewWeekDraftAllRest(t *testing.T) {
	week := NewWeekDraft()
	assert.NotEmpty(t, week.ID)
	for _, d := range week.Days {
		assert.True(t, d.Rest)
	}
}

func TestExerciseDraftSets(t *testing.T) {
	ex := NewExerciseDraft(domain.Exercise{ID: "bench-press", Name: "Bench Press", IsGlobal: true})
	require.Len(t, ex.Sets, 1, "a new exercise starts with one empty set row")
	assert.Equal(t, "bench-press", ex.ExerciseID)

	t.Run("removing the only row is rejected", func(t *testing.T) {
		err := ex.RemoveSet(ex.Sets[0].ID)
		assert.ErrorIs(t, err, ErrLastSet)
		assert.Len(t, ex.Sets, 1)
	})

	t.Run("added rows can be removed down to one", func(t *testing.T) {
		id := ex.AddSet()
		require.Len(t, ex.Sets, 2)
		require.NoError(t, ex.RemoveSet(id))
		assert.Len(t, ex.Sets, 1)
	})

	t.Run("unknown row id", func(t *testing.T) {
		ex.AddSet()
		err := ex.RemoveSet("nope")
		assert.EqualError(t, err, "set not found")
	})
}
