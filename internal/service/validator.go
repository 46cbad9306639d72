package service

import (
	"strings"

	"alcyxob/strength-log/internal/domain"
)

// The structural validators accept a candidate object against its declared
// shape. They run on both sides of the persistence boundary: before a write,
// to stop a broken composition from ever reaching storage, and after a read,
// to guard against drift or corruption in persisted documents. They return a
// typed *ServiceError and never panic on malformed input.

// ValidateProgramShape checks a program against the invariants of its
// declared variant.
func ValidateProgramShape(program *domain.Program) error {
	if program == nil {
		return ErrProgramInvalidInput
	}
	if strings.TrimSpace(program.Name) == "" {
		return ErrProgramInvalidInput
	}

	switch program.Type {
	case domain.ProgramSimple:
		if program.Week == nil {
			return ErrProgramMissingWeek
		}
		return validateWeekShape(*program.Week)

	case domain.ProgramAlternating:
		if len(program.AlternatingWeeks) != 2 {
			return ErrProgramMissingAlternatingWeeks
		}
		for _, week := range program.AlternatingWeeks {
			if err := validateWeekShape(week); err != nil {
				return err
			}
		}
		return nil

	case domain.ProgramAdvanced:
		if len(program.Phases) == 0 {
			return ErrProgramMissingPhases
		}
		for _, phase := range program.Phases {
			if strings.TrimSpace(phase.Name) == "" {
				return ErrProgramInvalidData
			}
			if len(phase.Weeks) == 0 {
				return ErrProgramInvalidData
			}
			for _, week := range phase.Weeks {
				if err := validateWeekShape(week); err != nil {
					return err
				}
			}
		}
		return nil

	default:
		return ErrProgramInvalidInput
	}
}

func validateWeekShape(week domain.Week) error {
	active := 0
	for _, day := range week.Days {
		if !day.Active() {
			continue
		}
		active++
		if day.Name == "" || len(day.Exercises) == 0 {
			return ErrProgramInvalidData
		}
		for _, exercise := range day.Exercises {
			if exercise.ExerciseID == "" || len(exercise.Sets) == 0 {
				return ErrProgramInvalidData
			}
			for _, set := range exercise.Sets {
				if set.Reps <= 0 || set.RIR < 0 {
					return ErrProgramInvalidData
				}
			}
		}
	}
	if active == 0 {
		return ErrProgramInvalidData
	}
	return nil
}

// ValidateWorkoutShape checks a logged workout read back from storage.
func ValidateWorkoutShape(workout *domain.Workout) error {
	if workout == nil {
		return ErrWorkoutInvalidData
	}
	if workout.Date.IsZero() {
		return ErrWorkoutInvalidData
	}
	if len(workout.Exercises) == 0 {
		return ErrWorkoutInvalidData
	}
	for _, exercise := range workout.Exercises {
		if exercise.ExerciseID == "" {
			return ErrWorkoutInvalidData
		}
		for _, set := range exercise.Sets {
			if set.Weight < 0 || set.Reps < 0 || set.RIR < 0 {
				return ErrWorkoutInvalidData
			}
		}
	}
	return nil
}

// ValidateExerciseShape checks a catalog exercise read back from storage.
func ValidateExerciseShape(exercise *domain.Exercise) error {
	if exercise == nil || exercise.ID == "" || strings.TrimSpace(exercise.Name) == "" {
		return ErrExerciseInvalidData
	}
	if !exercise.IsGlobal && exercise.OwnerID == nil {
		return ErrExerciseInvalidData
	}
	return nil
}
