package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pediatrician struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Specialty  string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	LocationID primitive.ObjectID `bson:"locationId,omitempty" json:"locationId,omitempty"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
