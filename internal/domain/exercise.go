package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightUnit is a unit an exercise may be logged in.
type WeightUnit string

const (
	UnitKilograms  WeightUnit = "kg"
	UnitPounds     WeightUnit = "lb"
	UnitBodyweight WeightUnit = "bodyweight"
)

// Exercise is an entry in the exercise catalog. The ID is derived from the
// name (lowercased, slugified) at creation time, so two exercises with the
// same derived id collide. Global exercises are visible to every user;
// user-created ones only to their owner.
type Exercise struct {
	ID             string              `bson:"_id" json:"id"`
	Name           string              `bson:"name" json:"name"`
	AllowedUnits   []WeightUnit        `bson:"allowedUnits" json:"allowedUnits"`
	IsGlobal       bool                `bson:"isGlobal" json:"isGlobal"`
	OwnerID        *primitive.ObjectID `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	VideoObjectKey string              `bson:"videoObjectKey,omitempty" json:"-"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
