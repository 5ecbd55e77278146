// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"telecare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return "", fmt.Errorf("failed to insert appointment: %w", err)
	}
	return appt.ID, nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
