package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserTypeNormal       = "normal"
	UserTypePediatrician = "pediatrician"
)

type User struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email               string               `bson:"email" json:"email"`
	DisplayName         string               `bson:"displayName" json:"displayName"`
	Password            string               `bson:"password" json:"-"` // Hide from JSON responses
	Phone               string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Photo               string               `bson:"photo,omitempty" json:"photo,omitempty"` // bare filename in the images bucket
	IsAdmin             bool                 `bson:"isAdmin" json:"isAdmin"`                 // display mirror; tokens are the authorization truth
	UserType            string               `bson:"userType" json:"userType"`               // "normal" or "pediatrician"
	PatientProfileIDs   []primitive.ObjectID `bson:"patientProfileIds,omitempty" json:"patientProfileIds,omitempty"`
	PreferredLocationID primitive.ObjectID   `bson:"preferredLocationId,omitempty" json:"preferredLocationId,omitempty"`
	CreatedAt           time.Time            `bson:"createdAt" json:"createdAt"`
	LastLoginAt         time.Time            `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
}
