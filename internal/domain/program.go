package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramType discriminates the three program shapes.
type ProgramType string

const (
	ProgramSimple      ProgramType = "simple"
	ProgramAlternating ProgramType = "alternating"
	ProgramAdvanced    ProgramType = "advanced"
)

// DaysPerWeek is the fixed number of day slots in a program week.
const DaysPerWeek = 7

// DayLabel is the canonical name of a day slot: Day1..Day7.
type DayLabel string

// DayLabelForSlot returns the canonical label for a zero-based slot index.
// Labels are positional: slot 0 is Day1 regardless of which slots are rest.
func DayLabelForSlot(slot int) DayLabel {
	return DayLabel(fmt.Sprintf("Day%d", slot+1))
}

// TemplateSet is a prescribed set inside a program: target reps at a target RIR.
// RIR is conventionally 0-10 but the domain does not cap it; range enforcement
// is an editor policy.
type TemplateSet struct {
	Reps int `bson:"reps" json:"reps"`
	RIR  int `bson:"rir" json:"rir"`
}

// ProgramExercise is an exercise slot inside a program day. ExerciseID links
// to the exercise catalog. Sets is non-empty on every composed program.
type ProgramExercise struct {
	ExerciseID string        `bson:"exerciseId" json:"exerciseId"`
	Name       string        `bson:"name" json:"name"`
	IsGlobal   bool          `bson:"isGlobal" json:"isGlobal"`
	Sets       []TemplateSet `bson:"sets" json:"sets"`
}

// Day is a tagged union: either a rest day or an active day carrying a
// canonical label and its exercises. The zero value is an active day, so
// callers construct rest days via RestDay.
//
// Stored/serialized form matches the union shape: the literal string "rest",
// or a document {name, exercises}.
type Day struct {
	Rest      bool
	Name      DayLabel
	Exercises []ProgramExercise
}

// RestDay returns the rest variant of Day.
func RestDay() Day {
	return Day{Rest: true}
}

// Active reports whether the day is not a rest slot.
func (d Day) Active() bool {
	return !d.Rest
}

// activeDayDoc is the persisted/serialized shape of an active day.
type activeDayDoc struct {
	Name      DayLabel          `bson:"name" json:"name"`
	Exercises []ProgramExercise `bson:"exercises" json:"exercises"`
}

const restMarker = "rest"

func (d Day) MarshalJSON() ([]byte, error) {
	if d.Rest {
		return json.Marshal(restMarker)
	}
	return json.Marshal(activeDayDoc{Name: d.Name, Exercises: d.Exercises})
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if marker != restMarker {
			return fmt.Errorf("unexpected day marker %q", marker)
		}
		*d = RestDay()
		return nil
	}
	var doc activeDayDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*d = Day{Name: doc.Name, Exercises: doc.Exercises}
	return nil
}

func (d Day) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if d.Rest {
		return bson.MarshalValue(restMarker)
	}
	return bson.MarshalValue(activeDayDoc{Name: d.Name, Exercises: d.Exercises})
}

func (d *Day) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeString:
		var marker string
		if err := bson.UnmarshalValue(t, data, &marker); err != nil {
			return err
		}
		if marker != restMarker {
			return fmt.Errorf("unexpected day marker %q", marker)
		}
		*d = RestDay()
		return nil
	case bson.TypeEmbeddedDocument:
		var doc activeDayDoc
		if err := bson.UnmarshalValue(t, data, &doc); err != nil {
			return err
		}
		*d = Day{Name: doc.Name, Exercises: doc.Exercises}
		return nil
	default:
		return errors.New("day must be the string \"rest\" or a document")
	}
}

// Week holds exactly seven day slots in canonical order (Day1..Day7).
type Week struct {
	Days [DaysPerWeek]Day `bson:"days" json:"days"`
}

// Phase groups consecutive weeks inside an advanced program.
type Phase struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Weeks       []Week `bson:"weeks" json:"weeks"`
}

// Program is the immutable root of a validated training plan. Exactly one of
// the variant fields is populated, selected by Type:
//
//   - simple:      Week
//   - alternating: AlternatingWeeks (exactly two)
//   - advanced:    Phases (at least one)
//
// Programs are never mutated after composition; edits re-run the full
// compose/validate path and replace the stored document.
type Program struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID          primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Type             ProgramType        `bson:"type" json:"type"`
	Week             *Week              `bson:"week,omitempty" json:"week,omitempty"`
	AlternatingWeeks []Week             `bson:"alternatingWeeks,omitempty" json:"alternatingWeeks,omitempty"`
	Phases           []Phase            `bson:"phases,omitempty" json:"phases,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
