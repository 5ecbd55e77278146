package booking

import (
	"context"
	"fmt"
	"time"

	"telecare/models"
	"telecare/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// resolveBookableStart re-runs the scheduling engine for the instant's
// provider-local date and checks the requested start is still in the
// bookable set. Returns the consultation duration the engine computed.
func (s *DefaultBookingService) resolveBookableStart(ctx context.Context, providerID string, start time.Time, now time.Time) (int, error) {
	provider, err := s.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		return 0, err
	}
	loc, err := s.Zones.Resolve(provider.Scheduling.Timezone)
	if err != nil {
		return 0, fmt.Errorf("provider timezone does not resolve: %w", err)
	}

	localDate := start.In(loc).Format(dateLayout)
	slots, err := s.Engine.GetBookableSlots(ctx, providerID, localDate, now)
	if err != nil {
		return 0, err
	}

	wanted := start.UTC().Format(time.RFC3339)
	for _, d := range slots.Dates {
		if d == wanted {
			return slots.Duration, nil
		}
	}
	return 0, NewSlotUnavailableError("requested slot is no longer bookable")
}

func parseStart(raw string) (time.Time, error) {
	start, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, NewSlotUnavailableError("start must be an RFC 3339 UTC instant")
	}
	return start.UTC(), nil
}

func (s *DefaultBookingService) HoldSlot(ctx context.Context, req models.HoldSlotRequest) (*models.SlotHold, error) {
	start, err := parseStart(req.Start)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if _, err := s.resolveBookableStart(ctx, req.ProviderID, start, now); err != nil {
		return nil, err
	}

	ok, err := s.Holds.PlaceHold(ctx, req.ProviderID, start, req.PatientID, s.HoldTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewSlotHeldError("slot is currently held by another patient")
	}

	return &models.SlotHold{
		ProviderID: req.ProviderID,
		Start:      start,
		PatientID:  req.PatientID,
		ExpiresAt:  now.Add(s.HoldTTL),
	}, nil
}

func (s *DefaultBookingService) ConfirmAppointment(ctx context.Context, req models.ConfirmAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	start, err := parseStart(req.Start)
	if err != nil {
		return nil, err
	}

	now := s.now()
	duration, err := s.resolveBookableStart(ctx, req.ProviderID, start, now)
	if err != nil {
		return nil, err
	}

	// A hold is not required, but a hold owned by someone else is a veto.
	holder, err := s.Holds.GetHold(ctx, req.ProviderID, start)
	if err != nil {
		return nil, err
	}
	if holder != "" && holder != req.PatientID {
		return nil, NewSlotHeldError("slot is currently held by another patient")
	}

	appt := &models.Appointment{
		ProviderID:      req.ProviderID,
		PatientID:       req.PatientID,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          models.AppointmentConfirmed,
		Reason:          req.Reason,
	}
	if _, err := s.AppointmentRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	if err := s.Holds.ReleaseHold(ctx, req.ProviderID, start); err != nil {
		// The hold expires on its own; nothing to unwind.
		logger.Warn("failed to release slot hold after confirmation",
			zap.String("providerID", req.ProviderID), zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, *appt); err != nil {
			logger.Error("failed to enqueue appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

func (s *DefaultBookingService) CancelAppointment(ctx context.Context, appointmentID, patientID string) error {
	appt, err := s.AppointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.PatientID != patientID {
		return NewNotOwnerError("appointment belongs to a different patient")
	}
	if appt.Status == models.AppointmentCancelled {
		return nil
	}
	return s.AppointmentRepo.UpdateStatus(ctx, appointmentID, models.AppointmentCancelled)
}

func (s *DefaultBookingService) GetPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.AppointmentRepo.ListForPatient(ctx, patientID, 50)
}
