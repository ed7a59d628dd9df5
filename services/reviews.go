package services

import (
	"context"
	"log"
	"time"

	"tutorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewStore persists reviews. Update and Delete only match documents owned
// by the caller's email, so a foreign id and a missing id both report zero
// rows affected.
type ReviewStore struct {
	coll *mongo.Collection
}

func NewReviewStore(coll *mongo.Collection) *ReviewStore {
	return &ReviewStore{coll: coll}
}

// protected fields a review patch may never touch
var protectedReviewFields = map[string]bool{
	"_id":           true,
	"id":            true,
	"tutorId":       true,
	"reviewerEmail": true,
	"reviewerName":  true,
	"createdAt":     true,
}

func ownershipFilter(id primitive.ObjectID, email string) bson.M {
	return bson.M{"_id": id, "reviewerEmail": email}
}

// sanitizeReviewPatch copies the caller-supplied fields, drops anything that
// would change identity or ownership, and stamps updatedAt.
func sanitizeReviewPatch(patch map[string]interface{}, now time.Time) bson.M {
	update := bson.M{}
	for key, value := range patch {
		if protectedReviewFields[key] {
			continue
		}
		update[key] = value
	}
	update["updatedAt"] = now
	return update
}

// Create stamps ownership and creation time from the verified caller and
// inserts the review. Reviewer identity is never taken from the request body.
func (s *ReviewStore) Create(ctx context.Context, review models.Review, email, name string) (models.Review, error) {
	review.ID = primitive.NilObjectID
	review.ReviewerEmail = email
	review.ReviewerName = name
	if review.ReviewerName == "" {
		review.ReviewerName = email
	}
	review.CreatedAt = time.Now()
	review.UpdatedAt = nil

	result, err := s.coll.InsertOne(ctx, review)
	if err != nil {
		return models.Review{}, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		review.ID = oid
	}
	return review, nil
}

// ListByTutor returns a tutor's reviews, newest first.
func (s *ReviewStore) ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error) {
	return s.find(ctx, bson.M{"tutorId": tutorID})
}

// ListByReviewer returns a reviewer's own reviews, newest first.
func (s *ReviewStore) ListByReviewer(ctx context.Context, email string) ([]models.Review, error) {
	return s.find(ctx, bson.M{"reviewerEmail": email})
}

// newestFirst orders list results by creation time, descending.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (s *ReviewStore) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := s.coll.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update applies a sanitized patch to the caller's own review. It returns the
// matched row count and, when a row matched, the review's tutor id for the
// aggregate recompute. A nonexistent id and an id owned by someone else both
// come back as zero rows.
func (s *ReviewStore) Update(ctx context.Context, id, email string, patch map[string]interface{}) (int64, string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, "", err
	}

	update := bson.M{"$set": sanitizeReviewPatch(patch, time.Now())}
	result, err := s.coll.UpdateOne(ctx, ownershipFilter(objID, email), update)
	if err != nil {
		return 0, "", err
	}
	if result.MatchedCount == 0 {
		return 0, "", nil
	}

	// the update already committed; failing to read the tutor id back only
	// costs the immediate recompute, which the nightly sweep covers
	var review models.Review
	if err := s.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&review); err != nil {
		log.Printf("Failed to read back review %s after update: %v", id, err)
		return result.MatchedCount, "", nil
	}
	return result.MatchedCount, review.TutorID, nil
}

// Delete removes the caller's own review and returns the deleted row count
// plus the review's tutor id for the aggregate recompute.
func (s *ReviewStore) Delete(ctx context.Context, id, email string) (int64, string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, "", err
	}

	// tutor id has to be read before the document is gone
	var review models.Review
	err = s.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return 0, "", nil
	}
	if err != nil {
		return 0, "", err
	}

	result, err := s.coll.DeleteOne(ctx, ownershipFilter(objID, email))
	if err != nil {
		return 0, "", err
	}
	if result.DeletedCount == 0 {
		return 0, "", nil
	}
	return result.DeletedCount, review.TutorID, nil
}
