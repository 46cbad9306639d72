package editor

import (
	"errors"

	"github.com/google/uuid"

	"alcyxob/strength-log/internal/domain"
)

// ErrLastSet is returned when the editor tries to remove the only remaining
// set row of an exercise. An exercise in the editor always keeps at least one
// set row; whether that row is filled in is checked at compose time instead.
var ErrLastSet = errors.New("an exercise must keep at least one set")

// SetDraft is one editable set row. Reps and RIR are the raw text-field
// contents; both stay strings until composition so that a half-filled row can
// exist while the user is typing.
type SetDraft struct {
	ID   string `json:"id"`
	Reps string `json:"reps"`
	RIR  string `json:"rir"`
}

// ExerciseDraft is an exercise picked into a program day, with its editable
// set rows. ExerciseID/Name/IsGlobal come from the catalog entry at pick time.
type ExerciseDraft struct {
	ID         string     `json:"id"`
	ExerciseID string     `json:"exerciseId"`
	Name       string     `json:"name"`
	IsGlobal   bool       `json:"isGlobal"`
	Sets       []SetDraft `json:"sets"`
}

// NewExerciseDraft creates a draft row for a catalog exercise with one empty
// set row.
func NewExerciseDraft(ex domain.Exercise) ExerciseDraft {
	return ExerciseDraft{
		ID:         uuid.NewString(),
		ExerciseID: ex.ID,
		Name:       ex.Name,
		IsGlobal:   ex.IsGlobal,
		Sets:       []SetDraft{{ID: uuid.NewString()}},
	}
}

// AddSet appends an empty set row and returns its ephemeral id.
func (e *ExerciseDraft) AddSet() string {
	set := SetDraft{ID: uuid.NewString()}
	e.Sets = append(e.Sets, set)
	return set.ID
}

// RemoveSet deletes the set row with the given ephemeral id. Removing the
// last remaining row is rejected with ErrLastSet.
func (e *ExerciseDraft) RemoveSet(setID string) error {
	if len(e.Sets) <= 1 {
		return ErrLastSet
	}
	for i, s := range e.Sets {
		if s.ID == setID {
			e.Sets = append(e.Sets[:i], e.Sets[i+1:]...)
			return nil
		}
	}
	return errors.New("set not found")
}

// DayDraft is one of the seven day slots of a week: either rest or a list of
// exercise drafts. The slot's canonical label (Day1..Day7) is positional and
// assigned at compose time, so the draft carries no name.
type DayDraft struct {
	Rest      bool            `json:"rest"`
	Exercises []ExerciseDraft `json:"exercises"`
}

// WeekDraft always holds seven day slots in canonical order.
type WeekDraft struct {
	ID   string                       `json:"id"`
	Days [domain.DaysPerWeek]DayDraft `json:"days"`
}

// NewWeekDraft creates a week of seven rest days.
func NewWeekDraft() WeekDraft {
	w := WeekDraft{ID: uuid.NewString()}
	for i := range w.Days {
		w.Days[i].Rest = true
	}
	return w
}

// PhaseDraft is an editable phase of an advanced program.
type PhaseDraft struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Weeks       []WeekDraft `json:"weeks"`
}

// NewPhaseDraft creates an empty phase with a single blank week.
func NewPhaseDraft() PhaseDraft {
	return PhaseDraft{ID: uuid.NewString(), Weeks: []WeekDraft{NewWeekDraft()}}
}

// ProgramDraft is the whole mutable editor state of a program. Depending on
// Type, either Weeks (one week for simple, two for alternating) or Phases is
// the active side; the composer reads only the active one. This type never
// reaches storage or analytics: the only way out is Compose.
type ProgramDraft struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        domain.ProgramType `json:"type"`
	Weeks       []WeekDraft        `json:"weeks"`
	Phases      []PhaseDraft       `json:"phases"`
}

// NewProgramDraft creates a blank draft for the given program shape.
func NewProgramDraft(t domain.ProgramType) ProgramDraft {
	d := ProgramDraft{Type: t}
	switch t {
	case domain.ProgramSimple:
		d.Weeks = []WeekDraft{NewWeekDraft()}
	case domain.ProgramAlternating:
		d.Weeks = []WeekDraft{NewWeekDraft(), NewWeekDraft()}
	case domain.ProgramAdvanced:
		d.Phases = []PhaseDraft{NewPhaseDraft()}
	}
	return d
}
