package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func pressDay() Day {
	return Day{
		Name: "Day1",
		Exercises: []ProgramExercise{
			{
				ExerciseID: "bench-press",
				Name:       "Bench Press",
				IsGlobal:   true,
				Sets:       []TemplateSet{{Reps: 5, RIR: 2}},
			},
		},
	}
}

func TestDayLabelForSlot(t *testing.T) {
	assert.Equal(t, DayLabel("Day1"), DayLabelForSlot(0))
	assert.Equal(t, DayLabel("Day7"), DayLabelForSlot(6))
}

func TestDayJSON(t *testing.T) {
	t.Run("rest day is the bare marker string", func(t *testing.T) {
		data, err := json.Marshal(RestDay())
		require.NoError(t, err)
		assert.JSONEq(t, `"rest"`, string(data))

		var day Day
		require.NoError(t, json.Unmarshal(data, &day))
		assert.True(t, day.Rest)
		assert.False(t, day.Active())
	})

	t.Run("active day round-trips as a document", func(t *testing.T) {
		data, err := json.Marshal(pressDay())
		require.NoError(t, err)

		var day Day
		require.NoError(t, json.Unmarshal(data, &day))
		assert.True(t, day.Active())
		assert.Equal(t, pressDay(), day)
	})

	t.Run("unknown marker string is rejected", func(t *testing.T) {
		var day Day
		assert.Error(t, json.Unmarshal([]byte(`"nap"`), &day))
	})
}

func TestDayBSON(t *testing.T) {
	t.Run("rest day stores as a plain string", func(t *testing.T) {
		typ, data, err := RestDay().MarshalBSONValue()
		require.NoError(t, err)
		assert.Equal(t, bson.TypeString, typ)

		var day Day
		require.NoError(t, day.UnmarshalBSONValue(typ, data))
		assert.True(t, day.Rest)
	})

	t.Run("active day stores as an embedded document", func(t *testing.T) {
		typ, data, err := pressDay().MarshalBSONValue()
		require.NoError(t, err)
		assert.Equal(t, bson.TypeEmbeddedDocument, typ)

		var day Day
		require.NoError(t, day.UnmarshalBSONValue(typ, data))
		assert.Equal(t, pressDay(), day)
	})

	t.Run("other bson types are rejected", func(t *testing.T) {
		typ, data, err := bson.MarshalValue(int32(7))
		require.NoError(t, err)

		var day Day
		assert.Error(t, day.UnmarshalBSONValue(typ, data))
	})

	t.Run("a whole week survives a document round-trip", func(t *testing.T) {
		var week Week
		for i := range week.Days {
			week.Days[i] = RestDay()
		}
		week.Days[0] = pressDay()

		data, err := bson.Marshal(week)
		require.NoError(t, err)

		var decoded Week
		require.NoError(t, bson.Unmarshal(data, &decoded))
		assert.Equal(t, week, decoded)
	})
}
