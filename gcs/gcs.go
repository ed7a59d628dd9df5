package gcs

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/storage"
)

var Client *storage.Client

var Bucket string

// InitGCS connects to Google Cloud Storage and checks the image bucket.
func InitGCS() {
	ctx := context.Background()
	var err error
	Client, err = storage.NewClient(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Google Cloud Storage: %v", err)
	}

	Bucket = os.Getenv("GCS_BUCKET")
	if Bucket == "" {
		Bucket = "tutorhub-images"
	}
	_, err = Client.Bucket(Bucket).Attrs(ctx)
	if err != nil {
		log.Fatalf("Cannot access bucket %s: %v", Bucket, err)
	}
	log.Printf("Bucket %s ready", Bucket)
}

func Close() {
	if Client != nil {
		Client.Close()
	}
}
