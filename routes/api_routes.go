package routes

import (
	"tutorhub/controllers"
	"tutorhub/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTutorialRoutes(r *gin.Engine) {
	r.GET("/tutorials", controllers.GetTutorials)
	r.GET("/tutorials/category/:language", controllers.GetTutorialsByLanguage)
	r.GET("/tutorials/:id", middlewares.AuthMiddleware(), controllers.GetTutorialByID)
	r.POST("/tutorials", middlewares.AuthMiddleware(), controllers.AddTutorial)
	r.PUT("/tutorials/:id", controllers.UpdateTutorial)
	r.DELETE("/tutorials/:id", controllers.DeleteTutorial)
	r.PATCH("/tutorials/:id/review", controllers.IncrementReviewCount)
	r.POST("/tutorials/:id/image", middlewares.AuthMiddleware(), controllers.UploadTutorialImage)
}

func SetupBookingRoutes(r *gin.Engine) {
	r.POST("/bookings", controllers.CreateBooking)
	r.GET("/bookings", middlewares.AuthMiddleware(), controllers.GetBookings)
	r.POST("/bookings/:id/pay", middlewares.AuthMiddleware(), controllers.PayBooking)
}

func SetupReviewRoutes(r *gin.Engine) {
	r.GET("/reviews/user/:email", middlewares.AuthMiddleware(), controllers.GetMyReviews)
	r.GET("/reviews/:tutorId", controllers.GetReviewsByTutor)
	r.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)
	r.PUT("/reviews/:id", middlewares.AuthMiddleware(), controllers.UpdateReview)
	r.DELETE("/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteReview)
}
