package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutSet is one logged set: the weight lifted, reps performed and the
// reps-in-reserve the lifter estimated on completion.
type WorkoutSet struct {
	Weight float64 `bson:"weight" json:"weight"`
	Reps   int     `bson:"reps" json:"reps"`
	RIR    int     `bson:"rir" json:"rir"`
}

// WorkoutExercise is one exercise block inside a logged workout. Order is the
// position of the block within the session.
type WorkoutExercise struct {
	ExerciseID string       `bson:"exerciseId" json:"exerciseId"`
	Name       string       `bson:"name" json:"name"`
	Order      int          `bson:"order" json:"order"`
	Sets       []WorkoutSet `bson:"sets" json:"sets"`
}

// Workout is a dated training session. Date is stored truncated to local
// midnight; time of day is never persisted. Validated and CreatedAt are
// write-once: updates carry them forward verbatim, and Validated only changes
// through the dedicated validate/unvalidate operations.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes" json:"notes"`
	Exercises []WorkoutExercise  `bson:"exercises" json:"exercises"`
	Validated bool               `bson:"validated" json:"validated"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
