package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAppointmentIndexes creates the indexes the appointment collection
// relies on. The compound index backs the engine's per-day booked-set fetch.
func EnsureAppointmentIndexes(coll *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "providerId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "startTime", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "patientId", Value: 1},
				{Key: "startTime", Value: -1},
			},
		},
	}

	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}
