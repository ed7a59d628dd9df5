package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a learner's reservation of a tutorial.
type Booking struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TutorialID string             `json:"tutorialId" bson:"tutorialId"`
	TutorEmail string             `json:"tutorEmail" bson:"tutorEmail"`
	Email      string             `json:"email" bson:"email"` // learner's email
	Language   string             `json:"language" bson:"language"`
	Image      string             `json:"image" bson:"image"`
	Price      float64            `json:"price" bson:"price"`
	Paid       bool               `json:"paid" bson:"paid"`
	ChargeID   string             `json:"chargeId,omitempty" bson:"chargeId,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
