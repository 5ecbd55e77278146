// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) ListConfirmedBetween(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"status":     models.AppointmentConfirmed,
		"startTime": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListForPatient(ctx context.Context, patientID string, limit int64) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOpts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
