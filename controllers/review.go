package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"tutorhub/models"
	"tutorhub/services"

	"github.com/gin-gonic/gin"
)

var reviewStore *services.ReviewStore
var ratingAggregator *services.RatingAggregator

// InitServices wires the shared store and aggregator into the handlers.
func InitServices(store *services.ReviewStore, aggregator *services.RatingAggregator) {
	reviewStore = store
	ratingAggregator = aggregator
}

// recomputeRating refreshes a tutor's aggregate after a review mutation. The
// mutation already committed, so a failure here is logged and never fails the
// request; the nightly sweep picks up whatever went stale.
func recomputeRating(ctx context.Context, tutorID string) {
	if tutorID == "" {
		return
	}
	if err := ratingAggregator.Recompute(ctx, tutorID); err != nil {
		log.Printf("Failed to update rating for tutor %s: %v", tutorID, err)
	}
}

// GetReviewsByTutor lists a tutor's reviews, newest first. Public.
func GetReviewsByTutor(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reviews, err := reviewStore.ListByTutor(ctx, c.Param("tutorId"))
	if err != nil {
		log.Println("Failed to fetch reviews:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview stores a review owned by the authenticated caller and
// refreshes the tutor's aggregate.
func CreateReview(c *gin.Context) {
	var input struct {
		TutorID string `json:"tutorId" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Text    string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	review, err := reviewStore.Create(ctx, models.Review{
		TutorID: input.TutorID,
		Rating:  input.Rating,
		Text:    input.Text,
	}, c.GetString("email"), c.GetString("name"))
	if err != nil {
		log.Println("Failed to save review:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	recomputeRating(ctx, review.TutorID)

	c.JSON(http.StatusOK, review)
}

// GetMyReviews lists the caller's own reviews. The path email must match the
// verified token; nobody can read another reviewer's history through here.
func GetMyReviews(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reviews, err := reviewStore.ListByReviewer(ctx, email)
	if err != nil {
		log.Println("Failed to fetch reviews:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// UpdateReview patches the caller's own review. A review that does not exist
// and one owned by somebody else both come back as not found.
func UpdateReview(c *gin.Context) {
	// typed patch: an off-range or non-numeric rating must never reach the
	// store, or the document stops decoding as a review
	var input struct {
		Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
		Text   *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	patch := map[string]interface{}{}
	if input.Rating != nil {
		patch["rating"] = *input.Rating
	}
	if input.Text != nil {
		patch["text"] = *input.Text
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	matched, tutorID, err := reviewStore.Update(ctx, c.Param("id"), c.GetString("email"), patch)
	if err != nil {
		log.Println("Failed to update review:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		return
	}

	recomputeRating(ctx, tutorID)

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "matchedCount": matched})
}

// DeleteReview removes the caller's own review.
func DeleteReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, tutorID, err := reviewStore.Delete(ctx, c.Param("id"), c.GetString("email"))
	if err != nil {
		log.Println("Failed to delete review:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
		return
	}

	recomputeRating(ctx, tutorID)

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully", "deletedCount": deleted})
}
