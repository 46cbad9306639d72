package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alcyxob/strength-log/internal/domain"
)

func trainingDay(name domain.DayLabel) domain.Day {
	return domain.Day{
		Name: name,
		Exercises: []domain.ProgramExercise{
			{
				ExerciseID: "bench-press",
				Name:       "Bench Press",
				Sets:       []domain.TemplateSet{{Reps: 5, RIR: 2}},
			},
		},
	}
}

func validWeek() domain.Week {
	var week domain.Week
	for i := range week.Days {
		week.Days[i] = domain.RestDay()
	}
	week.Days[0] = trainingDay("Day1")
	return week
}

func TestValidateProgramShape(t *testing.T) {
	simple := func() *domain.Program {
		week := validWeek()
		return &domain.Program{Name: "Base", Type: domain.ProgramSimple, Week: &week}
	}

	t.Run("valid variants pass", func(t *testing.T) {
		assert.NoError(t, ValidateProgramShape(simple()))

		alternating := &domain.Program{
			Name:             "A/B",
			Type:             domain.ProgramAlternating,
			AlternatingWeeks: []domain.Week{validWeek(), validWeek()},
		}
		assert.NoError(t, ValidateProgramShape(alternating))

		advanced := &domain.Program{
			Name: "Block",
			Type: domain.ProgramAdvanced,
			Phases: []domain.Phase{
				{Name: "Accumulation", Weeks: []domain.Week{validWeek()}},
			},
		}
		assert.NoError(t, ValidateProgramShape(advanced))
	})

	t.Run("variant-specific codes", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*domain.Program)
			wantErr error
		}{
			{"nil program", nil, ErrProgramInvalidInput},
			{"blank name", func(p *domain.Program) { p.Name = "  " }, ErrProgramInvalidInput},
			{"unknown type", func(p *domain.Program) { p.Type = "circular" }, ErrProgramInvalidInput},
			{"simple without week", func(p *domain.Program) { p.Week = nil }, ErrProgramMissingWeek},
			{
				"alternating with one week",
				func(p *domain.Program) {
					p.Type = domain.ProgramAlternating
					p.Week = nil
					p.AlternatingWeeks = []domain.Week{validWeek()}
				},
				ErrProgramMissingAlternatingWeeks,
			},
			{
				"advanced without phases",
				func(p *domain.Program) {
					p.Type = domain.ProgramAdvanced
					p.Week = nil
				},
				ErrProgramMissingPhases,
			},
			{
				"phase without a name",
				func(p *domain.Program) {
					p.Type = domain.ProgramAdvanced
					p.Week = nil
					p.Phases = []domain.Phase{{Weeks: []domain.Week{validWeek()}}}
				},
				ErrProgramInvalidData,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				program := simple()
				if tc.mutate == nil {
					program = nil
				} else {
					tc.mutate(program)
				}
				assert.ErrorIs(t, ValidateProgramShape(program), tc.wantErr)
			})
		}
	})

	t.Run("week-level corruption", func(t *testing.T) {
		mutations := []struct {
			name   string
			mutate func(*domain.Week)
		}{
			{"all rest", func(w *domain.Week) { w.Days[0] = domain.RestDay() }},
			{"training day without a name", func(w *domain.Week) { w.Days[0].Name = "" }},
			{"training day without exercises", func(w *domain.Week) { w.Days[0].Exercises = nil }},
			{"exercise without an id", func(w *domain.Week) { w.Days[0].Exercises[0].ExerciseID = "" }},
			{"exercise without sets", func(w *domain.Week) { w.Days[0].Exercises[0].Sets = nil }},
			{"set with zero reps", func(w *domain.Week) { w.Days[0].Exercises[0].Sets[0].Reps = 0 }},
			{"set with negative rir", func(w *domain.Week) { w.Days[0].Exercises[0].Sets[0].RIR = -1 }},
		}
		for _, tc := range mutations {
			t.Run(tc.name, func(t *testing.T) {
				program := simple()
				tc.mutate(program.Week)
				assert.ErrorIs(t, ValidateProgramShape(program), ErrProgramInvalidData)
			})
		}
	})

	t.Run("template rir zero is allowed", func(t *testing.T) {
		program := simple()
		program.Week.Days[0].Exercises[0].Sets[0].RIR = 0
		assert.NoError(t, ValidateProgramShape(program))
	})
}

func TestValidateWorkoutShape(t *testing.T) {
	valid := func() *domain.Workout {
		return &domain.Workout{
			Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Exercises: []domain.WorkoutExercise{
				{
					ExerciseID: "bench-press",
					Name:       "Bench Press",
					Sets:       []domain.WorkoutSet{{Weight: 100, Reps: 5, RIR: 2}},
				},
			},
		}
	}

	assert.NoError(t, ValidateWorkoutShape(valid()))

	cases := []struct {
		name   string
		mutate func(*domain.Workout)
	}{
		{"nil workout", nil},
		{"zero date", func(w *domain.Workout) { w.Date = time.Time{} }},
		{"no exercises", func(w *domain.Workout) { w.Exercises = nil }},
		{"exercise without an id", func(w *domain.Workout) { w.Exercises[0].ExerciseID = "" }},
		{"negative weight", func(w *domain.Workout) { w.Exercises[0].Sets[0].Weight = -1 }},
		{"negative reps", func(w *domain.Workout) { w.Exercises[0].Sets[0].Reps = -1 }},
		{"negative rir", func(w *domain.Workout) { w.Exercises[0].Sets[0].RIR = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			workout := valid()
			if tc.mutate == nil {
				workout = nil
			} else {
				tc.mutate(workout)
			}
			assert.ErrorIs(t, ValidateWorkoutShape(workout), ErrWorkoutInvalidData)
		})
	}

	t.Run("logged zero values are tolerated", func(t *testing.T) {
		// A bodyweight set logs weight 0 and a set to failure logs rir 0;
		// both are legal stored shapes. Analytics decides what they mean.
		workout := valid()
		workout.Exercises[0].Sets[0] = domain.WorkoutSet{Weight: 0, Reps: 0, RIR: 0}
		assert.NoError(t, ValidateWorkoutShape(workout))
	})
}

func TestValidateExerciseShape(t *testing.T) {
	global := &domain.Exercise{ID: "bench-press", Name: "Bench Press", IsGlobal: true}
	assert.NoError(t, ValidateExerciseShape(global))

	assert.ErrorIs(t, ValidateExerciseShape(nil), ErrExerciseInvalidData)
	assert.ErrorIs(t, ValidateExerciseShape(&domain.Exercise{Name: "Bench"}), ErrExerciseInvalidData)
	assert.ErrorIs(t, ValidateExerciseShape(&domain.Exercise{ID: "bench-press", Name: "  "}), ErrExerciseInvalidData)

	// A non-global exercise must have an owner.
	orphan := &domain.Exercise{ID: "bench-press", Name: "Bench Press"}
	assert.ErrorIs(t, ValidateExerciseShape(orphan), ErrExerciseInvalidData)
}
