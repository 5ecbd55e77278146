// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"telecare/database"
	"telecare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no appointment document matches the query.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// ListConfirmedBetween returns the provider's confirmed appointments
	// whose start falls in the half-open window [from, to). This is the
	// booked-set fetch the scheduling engine filters against.
	ListConfirmedBetween(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error)
	// ListForPatient returns a patient's appointments, newest first.
	ListForPatient(ctx context.Context, patientID string, limit int64) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("telecare")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
