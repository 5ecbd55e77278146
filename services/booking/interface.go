package booking

import (
	"context"
	"time"

	appointmentRepo "telecare/database/repository/appointment"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/services/scheduling"
)

// ReminderScheduler enqueues a delayed reminder for a confirmed
// appointment. The asynq-backed implementation lives in the cron package.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error
}

// BookingService turns listed slots into holds and confirmed appointments.
type BookingService interface {
	HoldSlot(ctx context.Context, req models.HoldSlotRequest) (*models.SlotHold, error)
	ConfirmAppointment(ctx context.Context, req models.ConfirmAppointmentRequest) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID, patientID string) error
	GetPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine          scheduling.SchedulingEngine
	ProviderRepo    providerRepo.ProviderRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Zones           scheduling.ZoneResolver
	Holds           HoldStore
	Reminders       ReminderScheduler
	HoldTTL         time.Duration

	// Clock is overridable in tests; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}
