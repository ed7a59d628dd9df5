package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a learner's feedback on a tutor. ReviewerEmail is stamped from the
// verified token at creation and never accepted from a request body.
type Review struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TutorID       string             `json:"tutorId" bson:"tutorId"` // hex id of the tutorial document
	ReviewerEmail string             `json:"reviewerEmail" bson:"reviewerEmail"`
	ReviewerName  string             `json:"reviewerName" bson:"reviewerName"`
	Rating        int                `json:"rating" bson:"rating"` // 1-5 stars
	Text          string             `json:"text" bson:"text"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
