package editor

import (
	"fmt"
	"strconv"
	"strings"

	"alcyxob/strength-log/internal/domain"
)

// CompositionError is a user-attributable reason why a draft could not be
// composed into a program. Messages are exercise- or phase-scoped so the
// editor can point at the offending item.
type CompositionError string

func (e CompositionError) Error() string { return string(e) }

func compositionErrorf(format string, args ...any) CompositionError {
	return CompositionError(fmt.Sprintf(format, args...))
}

// Compose folds the mutable draft into an immutable validated Program
// variant, or fails with a CompositionError. No partial program is ever
// returned: the first rule violation aborts the whole composition and the
// caller leaves the draft untouched for correction.
func Compose(draft ProgramDraft) (*domain.Program, error) {
	name := strings.TrimSpace(draft.Name)
	description := strings.TrimSpace(draft.Description)
	if name == "" {
		return nil, CompositionError("program name is required")
	}
	if description == "" {
		return nil, CompositionError("program description is required")
	}

	program := &domain.Program{
		Name:        name,
		Description: description,
		Type:        draft.Type,
	}

	switch draft.Type {
	case domain.ProgramSimple:
		if len(draft.Weeks) == 0 {
			return nil, CompositionError("program must have a week")
		}
		week, err := composeWeek(draft.Weeks[0])
		if err != nil {
			return nil, err
		}
		program.Week = &week

	case domain.ProgramAlternating:
		// The editor always supplies exactly two weeks; anything else is a
		// broken caller, not a user mistake, but it must never slip through.
		if len(draft.Weeks) != 2 {
			return nil, CompositionError("an alternating program requires exactly two weeks")
		}
		weeks := make([]domain.Week, 0, 2)
		for _, wd := range draft.Weeks {
			week, err := composeWeek(wd)
			if err != nil {
				return nil, err
			}
			weeks = append(weeks, week)
		}
		program.AlternatingWeeks = weeks

	case domain.ProgramAdvanced:
		if len(draft.Phases) == 0 {
			return nil, CompositionError("an advanced program must have at least one phase")
		}
		phases := make([]domain.Phase, 0, len(draft.Phases))
		for _, pd := range draft.Phases {
			phase, err := composePhase(pd)
			if err != nil {
				return nil, err
			}
			phases = append(phases, phase)
		}
		program.Phases = phases

	default:
		return nil, compositionErrorf("unknown program type %q", draft.Type)
	}

	return program, nil
}

func composePhase(draft PhaseDraft) (domain.Phase, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return domain.Phase{}, CompositionError("all phases must have a name")
	}
	if len(draft.Weeks) == 0 {
		return domain.Phase{}, compositionErrorf("phase %q must have at least one week", name)
	}
	weeks := make([]domain.Week, 0, len(draft.Weeks))
	for _, wd := range draft.Weeks {
		week, err := composeWeek(wd)
		if err != nil {
			return domain.Phase{}, err
		}
		weeks = append(weeks, week)
	}
	return domain.Phase{
		Name:        name,
		Description: strings.TrimSpace(draft.Description),
		Weeks:       weeks,
	}, nil
}

func composeWeek(draft WeekDraft) (domain.Week, error) {
	var week domain.Week
	active := 0
	for slot, dd := range draft.Days {
		if dd.Rest {
			week.Days[slot] = domain.RestDay()
			continue
		}
		active++
		if len(dd.Exercises) == 0 {
			return domain.Week{}, compositionErrorf("%s has no exercises; mark it as a rest day or add one", domain.DayLabelForSlot(slot))
		}
		exercises := make([]domain.ProgramExercise, 0, len(dd.Exercises))
		for _, ed := range dd.Exercises {
			exercise, err := composeExercise(ed)
			if err != nil {
				return domain.Week{}, err
			}
			exercises = append(exercises, exercise)
		}
		week.Days[slot] = domain.Day{
			Name:      domain.DayLabelForSlot(slot),
			Exercises: exercises,
		}
	}
	if active == 0 {
		return domain.Week{}, CompositionError("a week must have at least one training day")
	}
	return week, nil
}

// composeExercise keeps only set rows where both reps and RIR are filled in;
// half-filled rows are dropped, never defaulted. Numeric coercion happens
// after that presence filter.
func composeExercise(draft ExerciseDraft) (domain.ProgramExercise, error) {
	sets := make([]domain.TemplateSet, 0, len(draft.Sets))
	for _, sd := range draft.Sets {
		reps := strings.TrimSpace(sd.Reps)
		rir := strings.TrimSpace(sd.RIR)
		if reps == "" || rir == "" {
			continue
		}
		repsN, err := strconv.Atoi(reps)
		if err != nil {
			return domain.ProgramExercise{}, compositionErrorf("%s has an invalid reps value %q", draft.Name, reps)
		}
		rirN, err := strconv.Atoi(rir)
		if err != nil {
			return domain.ProgramExercise{}, compositionErrorf("%s has an invalid RIR value %q", draft.Name, rir)
		}
		sets = append(sets, domain.TemplateSet{Reps: repsN, RIR: rirN})
	}
	if len(sets) == 0 {
		return domain.ProgramExercise{}, compositionErrorf("%s must have at least one valid set", draft.Name)
	}
	return domain.ProgramExercise{
		ExerciseID: draft.ExerciseID,
		Name:       draft.Name,
		IsGlobal:   draft.IsGlobal,
		Sets:       sets,
	}, nil
}
