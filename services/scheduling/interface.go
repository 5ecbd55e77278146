package scheduling

import (
	"context"
	"time"

	appointmentRepo "telecare/database/repository/appointment"
	providerRepo "telecare/database/repository/provider"
	"telecare/models"
)

// SchedulingEngine computes the bookable slots for a provider and date.
type SchedulingEngine interface {
	// GetBookableSlots returns the provider's bookable start instants for
	// the given calendar date ("2006-01-02", provider-local). now is
	// supplied by the caller so the computation stays deterministic.
	GetBookableSlots(ctx context.Context, providerID, date string, now time.Time) (models.BookableSlots, error)
}

// DefaultSchedulingEngine is the production engine. It is stateless:
// every invocation is a pure computation over two read-only fetches.
type DefaultSchedulingEngine struct {
	ProviderRepo    providerRepo.ProviderRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Zones           ZoneResolver
	TrailingPolicy  TrailingSlotPolicy
}
