package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tutorial is a tutor's offering. AverageRating and TotalReviews are derived
// fields; their only writer is the rating aggregator.
type Tutorial struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"` // tutor's account email
	TutorName     string             `json:"tutorName" bson:"tutorName"`
	Language      string             `json:"language" bson:"language"`
	Image         string             `json:"image" bson:"image"`
	Price         float64            `json:"price" bson:"price"`
	Description   string             `json:"description" bson:"description"`
	Review        int                `json:"review" bson:"review"` // legacy booking-review counter
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	TotalReviews  int                `json:"totalReviews" bson:"totalReviews"`
}
