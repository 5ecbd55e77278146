package provider

import (
	"context"
	"fmt"

	"telecare/models"

	"github.com/google/uuid"
)

func (s *DefaultProviderService) GetProvider(ctx context.Context, id string) (*models.ProviderDTO, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := p.ToDTO()
	return &dto, nil
}

func (s *DefaultProviderService) RegisterProvider(ctx context.Context, p *models.Provider) (*models.ProviderDTO, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := s.validateScheduling(p.Scheduling); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	dto := p.ToDTO()
	return &dto, nil
}

func (s *DefaultProviderService) UpdateAvailability(ctx context.Context, id string, req models.UpdateAvailabilityRequest) (*models.ProviderDTO, error) {
	profile := models.SchedulingProfile{
		WeeklyAvailability:          req.WeeklyAvailability,
		Timezone:                    req.Timezone,
		ConsultationDurationMinutes: req.ConsultationDurationMinutes,
	}
	if err := s.validateScheduling(profile); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateAvailability(ctx, id, profile); err != nil {
		return nil, err
	}
	return s.GetProvider(ctx, id)
}

func (s *DefaultProviderService) DeleteProvider(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// validateScheduling rejects profiles the engine would later refuse to
// compute with. An entirely unset profile (no availability yet) is fine.
func (s *DefaultProviderService) validateScheduling(profile models.SchedulingProfile) error {
	if len(profile.WeeklyAvailability) == 0 && profile.Timezone == "" && profile.ConsultationDurationMinutes == 0 {
		return nil
	}
	if err := profile.WeeklyAvailability.Validate(); err != nil {
		return fmt.Errorf("invalid weekly availability: %w", err)
	}
	if profile.ConsultationDurationMinutes <= 0 {
		return fmt.Errorf("consultation duration must be positive, got %d", profile.ConsultationDurationMinutes)
	}
	if _, err := s.Zones.Resolve(profile.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", profile.Timezone, err)
	}
	return nil
}
