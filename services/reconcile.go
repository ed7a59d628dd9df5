package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReconcileRatings recomputes the aggregate for every tutor that has at least
// one review. A recompute that failed after a review mutation leaves a stale
// aggregate behind; this sweep heals it.
func ReconcileRatings(ctx context.Context, reviewColl *mongo.Collection, aggregator *RatingAggregator) error {
	tutorIDs, err := reviewColl.Distinct(ctx, "tutorId", bson.M{})
	if err != nil {
		return err
	}

	for _, raw := range tutorIDs {
		tutorID, ok := raw.(string)
		if !ok {
			continue
		}
		if err := aggregator.Recompute(ctx, tutorID); err != nil {
			log.Printf("Failed to reconcile rating for tutor %s: %v", tutorID, err)
		}
	}
	return nil
}

// StartRatingReconciler schedules the nightly rating sweep. The returned cron
// should be stopped on shutdown.
func StartRatingReconciler(reviewColl *mongo.Collection, aggregator *RatingAggregator) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := ReconcileRatings(ctx, reviewColl, aggregator); err != nil {
			log.Println("Rating reconcile sweep failed:", err)
		}
	})
	if err != nil {
		log.Println("Failed to schedule rating reconciler:", err)
		return c
	}
	c.Start()
	return c
}
