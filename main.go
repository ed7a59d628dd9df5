package main

import (
	"log"
	"os"

	"tutorhub/controllers"
	"tutorhub/database"
	"tutorhub/gcs"
	"tutorhub/routes"
	"tutorhub/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning Error loading .env file:", err)
	}

	gcs.InitGCS()
	defer gcs.Close()

	db.InitDB()
	defer db.DisconnectDB()

	reviewStore := services.NewReviewStore(db.ReviewCollection)
	tutorRecords := services.NewTutorRecords(db.TutorialCollection)
	aggregator := services.NewRatingAggregator(reviewStore, tutorRecords)
	controllers.InitServices(reviewStore, aggregator)

	// nightly sweep heals aggregates left stale by failed recomputes
	reconciler := services.StartRatingReconciler(db.ReviewCollection, aggregator)
	defer reconciler.Stop()

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Starting server on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
