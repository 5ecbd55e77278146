package provider

import (
	"context"

	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/services/scheduling"
)

// ProviderService manages provider records and the availability-editing
// flow that feeds the scheduling engine's reads.
type ProviderService interface {
	GetProvider(ctx context.Context, id string) (*models.ProviderDTO, error)
	RegisterProvider(ctx context.Context, p *models.Provider) (*models.ProviderDTO, error)
	UpdateAvailability(ctx context.Context, id string, req models.UpdateAvailabilityRequest) (*models.ProviderDTO, error)
	DeleteProvider(ctx context.Context, id string) error
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Zones scheduling.ZoneResolver
}
