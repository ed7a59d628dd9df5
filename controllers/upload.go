package controllers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"tutorhub/database"
	"tutorhub/gcs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// uploadImageToGCS streams an image into the bucket and returns its public URL.
func uploadImageToGCS(reader io.Reader, contentType, folder string) (string, error) {
	ctx := context.Background()

	extension := "jpg"
	switch strings.ToLower(contentType) {
	case "image/png":
		extension = "png"
	case "image/jpeg", "image/jpg":
		extension = "jpeg"
	case "image/gif":
		extension = "gif"
	default:
		log.Printf("Unsupported content type: %s, defaulting to .jpg", contentType)
	}

	objectName := fmt.Sprintf("%s/%s_%d.%s", folder, uuid.NewString(), time.Now().UnixNano(), extension)

	writer := gcs.Client.Bucket(gcs.Bucket).Object(objectName).NewWriter(ctx)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	writer.ContentType = contentType

	if _, err := io.Copy(writer, reader); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", gcs.Bucket, objectName), nil
}

// UploadTutorialImage stores a cover image for the caller's own tutorial.
func UploadTutorialImage(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial ID"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Println("Failed to open upload:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer file.Close()

	publicURL, err := uploadImageToGCS(file, fileHeader.Header.Get("Content-Type"), "tutorials")
	if err != nil {
		log.Println("Upload failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.TutorialCollection.UpdateOne(ctx,
		bson.M{"_id": objID, "email": c.GetString("email")},
		bson.M{"$set": bson.M{"image": publicURL}},
	)
	if err != nil {
		log.Println("Failed to save image URL:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tutorial not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": publicURL})
}
