package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOwnershipFilterMatchesIDAndOwner(t *testing.T) {
	id := primitive.NewObjectID()
	filter := ownershipFilter(id, "learner@example.com")

	assert.Equal(t, bson.M{"_id": id, "reviewerEmail": "learner@example.com"}, filter)
}

func TestNewestFirstSortsByCreatedAtDescending(t *testing.T) {
	opts := newestFirst()

	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts.Sort)
}

func TestSanitizeReviewPatchStripsProtectedFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	patch := map[string]interface{}{
		"rating":        4,
		"text":          "much improved",
		"reviewerEmail": "attacker@example.com",
		"reviewerName":  "Attacker",
		"tutorId":       "someone-else",
		"_id":           "deadbeef",
		"id":            "deadbeef",
		"createdAt":     "1999-01-01",
	}

	update := sanitizeReviewPatch(patch, now)

	assert.Equal(t, bson.M{
		"rating":    4,
		"text":      "much improved",
		"updatedAt": now,
	}, update)
}

func TestSanitizeReviewPatchAlwaysStampsUpdatedAt(t *testing.T) {
	now := time.Now()
	update := sanitizeReviewPatch(map[string]interface{}{}, now)

	assert.Equal(t, bson.M{"updatedAt": now}, update)
}
