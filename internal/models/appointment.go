package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

type Appointment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID    primitive.ObjectID `bson:"patientId" json:"patientId"`
	PatientName  string             `bson:"patientName" json:"patientName"`
	LocationName string             `bson:"locationName" json:"locationName"`
	Type         string             `bson:"type" json:"type"` // product type booked, e.g. "vaccine"
	Status       string             `bson:"status" json:"status"`
	DateTime     time.Time          `bson:"dateTime" json:"dateTime"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
