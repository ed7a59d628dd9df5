package services

import (
	"context"
	"math"

	"tutorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewSource yields the full review set for a tutor.
type ReviewSource interface {
	ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error)
}

// TutorSink writes the derived rating fields onto a tutor record.
type TutorSink interface {
	SetAggregate(ctx context.Context, tutorID string, average float64, total int) error
}

// RatingAggregator recomputes a tutor's averageRating/totalReviews from the
// full current review set. It is the only writer of those two fields; every
// review mutation path must go through Recompute.
type RatingAggregator struct {
	reviews ReviewSource
	tutors  TutorSink
}

func NewRatingAggregator(reviews ReviewSource, tutors TutorSink) *RatingAggregator {
	return &RatingAggregator{reviews: reviews, tutors: tutors}
}

// Aggregate returns the mean rating rounded to one decimal place and the
// review count. An empty set yields the zero aggregate.
func Aggregate(reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	average := float64(sum) / float64(len(reviews))
	return math.Round(average*10) / 10, len(reviews)
}

// Recompute reads every review for the tutor and writes the fresh aggregate.
// Deleting the last review resets the aggregate to zero rather than leaving
// the old numbers behind.
func (a *RatingAggregator) Recompute(ctx context.Context, tutorID string) error {
	reviews, err := a.reviews.ListByTutor(ctx, tutorID)
	if err != nil {
		return err
	}
	average, total := Aggregate(reviews)
	return a.tutors.SetAggregate(ctx, tutorID, average, total)
}

// TutorRecords is the mongo-backed TutorSink over the tutorials collection.
type TutorRecords struct {
	coll *mongo.Collection
}

func NewTutorRecords(coll *mongo.Collection) *TutorRecords {
	return &TutorRecords{coll: coll}
}

func (t *TutorRecords) SetAggregate(ctx context.Context, tutorID string, average float64, total int) error {
	objID, err := primitive.ObjectIDFromHex(tutorID)
	if err != nil {
		return err
	}
	_, err = t.coll.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"averageRating": average, "totalReviews": total}},
	)
	return err
}
