package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"tutorhub/database"
	"tutorhub/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTutorials lists all tutorials, filtered to one tutor when ?email= is
// given.
func GetTutorials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if email := c.Query("email"); email != "" {
		filter["email"] = email
	}

	cursor, err := db.TutorialCollection.Find(ctx, filter)
	if err != nil {
		log.Println("Failed to fetch tutorials:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	tutorials := []models.Tutorial{}
	if err := cursor.All(ctx, &tutorials); err != nil {
		log.Println("Failed to parse tutorials:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, tutorials)
}

// GetTutorialsByLanguage lists tutorials for one language category.
func GetTutorialsByLanguage(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.TutorialCollection.Find(ctx, bson.M{"language": c.Param("language")})
	if err != nil {
		log.Println("Failed to fetch tutorials:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	tutorials := []models.Tutorial{}
	if err := cursor.All(ctx, &tutorials); err != nil {
		log.Println("Failed to parse tutorials:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, tutorials)
}

// GetTutorialByID returns one tutorial's details.
func GetTutorialByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var tutorial models.Tutorial
	if err := db.TutorialCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&tutorial); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tutorial not found"})
		return
	}
	c.JSON(http.StatusOK, tutorial)
}

// AddTutorial creates a tutorial owned by the authenticated tutor. The owner
// email comes from the token, not the body.
func AddTutorial(c *gin.Context) {
	var tutorial models.Tutorial
	if err := c.ShouldBindJSON(&tutorial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	tutorial.ID = primitive.NilObjectID
	tutorial.Email = c.GetString("email")
	// derived fields start at zero; only the rating aggregator writes them
	tutorial.Review = 0
	tutorial.AverageRating = 0
	tutorial.TotalReviews = 0

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.TutorialCollection.InsertOne(ctx, tutorial)
	if err != nil {
		log.Println("Failed to save tutorial:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		tutorial.ID = oid
	}
	c.JSON(http.StatusOK, tutorial)
}

// UpdateTutorial applies the request body as a partial update.
func UpdateTutorial(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial ID"})
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	delete(patch, "_id")
	delete(patch, "id")
	delete(patch, "averageRating")
	delete(patch, "totalReviews")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.TutorialCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": patch})
	if err != nil {
		log.Println("Failed to update tutorial:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}

// DeleteTutorial removes a tutorial.
func DeleteTutorial(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.TutorialCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		log.Println("Failed to delete tutorial:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// IncrementReviewCount bumps the legacy booking-review counter on a tutorial.
// The star-rating aggregate is separate and only written by the aggregator.
func IncrementReviewCount(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.TutorialCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"review": 1}})
	if err != nil {
		log.Println("Failed to increment review count:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount})
}
