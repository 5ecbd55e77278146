package scheduling

import (
	"context"
	"errors"
	"time"

	appointmentRepo "telecare/database/repository/appointment"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// appointmentFetchPadding widens the booked-set fetch window around the
// requested date so a provider whose local day straddles UTC midnight
// still sees every blocking appointment. Extra appointments outside the
// local day are harmless: they only remove candidates they genuinely
// overlap.
const appointmentFetchPadding = 24 * time.Hour

type fetchResult struct {
	appts []models.Appointment
	err   error
}

// GetBookableSlots runs the full pipeline: resolve availability for the
// date's weekday, expand templates to UTC instants, drop overlaps with
// booked appointments, drop instants not strictly after now.
func (se *DefaultSchedulingEngine) GetBookableSlots(ctx context.Context, providerID, date string, now time.Time) (models.BookableSlots, error) {
	logger := utils.GetLogger()

	// All validation happens before any fetch is issued.
	if providerID == "" {
		return models.BookableSlots{}, &InvalidArgumentError{Field: "providerId", Message: "must not be empty"}
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return models.BookableSlots{}, &InvalidArgumentError{Field: "date", Message: "must be a YYYY-MM-DD calendar date"}
	}

	// The two fetches are independent, so issue them in parallel.
	apptCh := make(chan fetchResult, 1)
	go func() {
		from := day.Add(-appointmentFetchPadding)
		to := day.Add(24*time.Hour + appointmentFetchPadding)
		appts, err := se.AppointmentRepo.ListConfirmedBetween(ctx, providerID, from, to)
		apptCh <- fetchResult{appts: appts, err: err}
	}()

	provider, err := se.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		<-apptCh
		if errors.Is(err, providerRepo.ErrNotFound) {
			return models.BookableSlots{}, &NotFoundError{ProviderID: providerID}
		}
		return models.BookableSlots{}, &UpstreamError{Op: "provider fetch", Err: err}
	}

	fetched := <-apptCh
	if fetched.err != nil {
		if errors.Is(fetched.err, appointmentRepo.ErrNotFound) {
			fetched.appts = nil
		} else {
			return models.BookableSlots{}, &UpstreamError{Op: "appointment fetch", Err: fetched.err}
		}
	}

	profile := provider.Scheduling
	if len(profile.WeeklyAvailability) == 0 {
		// Provider exists but has not configured availability: nothing to
		// offer, not an error.
		return models.EmptyBookableSlots(), nil
	}
	if profile.ConsultationDurationMinutes <= 0 {
		logger.Error("corrupt scheduling profile: non-positive consultation duration",
			zap.String("providerID", providerID),
			zap.Int("durationMinutes", profile.ConsultationDurationMinutes))
		return models.BookableSlots{}, &ProfileDataError{ProviderID: providerID, Message: "consultation duration must be positive"}
	}
	loc, err := se.Zones.Resolve(profile.Timezone)
	if err != nil {
		logger.Error("corrupt scheduling profile: unresolvable timezone",
			zap.String("providerID", providerID),
			zap.String("timezone", profile.Timezone),
			zap.Error(err))
		return models.BookableSlots{}, &ProfileDataError{ProviderID: providerID, Message: "timezone does not resolve"}
	}

	candidates := ResolveDayCandidates(profile, day, loc, se.TrailingPolicy)
	candidates = FilterOverlaps(candidates, fetched.appts, profile.ConsultationDurationMinutes)
	candidates = FilterFuture(candidates, now)

	if len(candidates) == 0 {
		return models.EmptyBookableSlots(), nil
	}

	dates := make([]string, len(candidates))
	for i, c := range candidates {
		dates[i] = c.UTC().Format(time.RFC3339)
	}
	return models.BookableSlots{
		Dates:    dates,
		Duration: profile.ConsultationDurationMinutes,
		Timezone: profile.Timezone,
	}, nil
}
