package notification

import (
	"context"

	"telecare/models"
	"telecare/utils"

	"go.uber.org/zap"
)

// NotificationService delivers appointment reminders. The production
// push/SMS transport is an external collaborator; this interface is the
// boundary to it.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, appt models.Appointment) error
}

// LogNotificationService writes reminders to the log. Used until a real
// transport is wired in and as the fallback in development.
type LogNotificationService struct{}

func (LogNotificationService) SendAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	utils.GetLogger().Info("appointment reminder",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.String("patientID", appt.PatientID),
		zap.Time("startTime", appt.StartTime))
	return nil
}
