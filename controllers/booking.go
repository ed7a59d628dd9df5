package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"tutorhub/database"
	"tutorhub/models"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBooking stores a learner's reservation and notifies the tutor by
// email. The mail is best effort; a failure never fails the booking.
func CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	booking.ID = primitive.NilObjectID
	booking.Paid = false
	booking.ChargeID = ""
	booking.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.BookingCollection.InsertOne(ctx, booking)
	if err != nil {
		log.Println("Failed to save booking:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	if booking.TutorEmail != "" {
		if err := utils.SendBookingEmail(booking.TutorEmail, booking.Email, booking.Language); err != nil {
			log.Println("Failed to send booking email:", err)
		}
	}

	c.JSON(http.StatusOK, booking)
}

// GetBookings lists the caller's booked tutors. Like the review history
// listing, the optional email filter must match the verified token.
func GetBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString("email")
	} else if email != c.GetString("email") {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.BookingCollection.Find(ctx, bson.M{"email": email})
	if err != nil {
		log.Println("Failed to fetch bookings:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		log.Println("Failed to parse bookings:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// PayBooking charges the caller's card token for a booking and marks it paid.
func PayBooking(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking ID"})
		return
	}

	var input struct {
		Token string `json:"token" binding:"required"` // omise card token
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var booking models.Booking
	err = db.BookingCollection.FindOne(ctx, bson.M{"_id": objID, "email": c.GetString("email")}).Decode(&booking)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if booking.Paid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Booking already paid"})
		return
	}

	client, err := omise.NewClient(
		os.Getenv("OMISE_PUBLIC_KEY"),
		os.Getenv("OMISE_SECRET_KEY"),
	)
	if err != nil {
		log.Println("Omise client init failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	charge := &omise.Charge{}
	op := &operations.CreateCharge{
		Amount:   int64(booking.Price * 100), // satang
		Currency: "thb",
		Card:     input.Token,
	}
	if err := client.Do(charge, op); err != nil {
		log.Println("Charge failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment failed"})
		return
	}

	_, err = db.BookingCollection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"paid": charge.Paid, "chargeId": charge.ID}},
	)
	if err != nil {
		log.Println("Failed to record charge:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chargeId": charge.ID,
		"status":   charge.Status,
		"paid":     charge.Paid,
	})
}
