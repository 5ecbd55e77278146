package models

import "time"

// Appointment statuses.
const (
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment is a confirmed consultation. StartTime is stored in UTC;
// the occupied interval is the half-open [StartTime, EndTime()).
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	ProviderID      string    `bson:"providerId" json:"providerId"`
	PatientID       string    `bson:"patientId" json:"patientId"`
	StartTime       time.Time `bson:"startTime" json:"startTime"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"`
	Reason          string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EndTime returns the exclusive end of the occupied interval.
func (a Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the appointment's interval intersects the
// half-open interval [start, end).
func (a Appointment) Overlaps(start, end time.Time) bool {
	return start.Before(a.EndTime()) && end.After(a.StartTime)
}
