package models

import "time"

// Profile holds the provider's public identity fields.
type Profile struct {
	Name         string  `bson:"name" json:"name,omitempty"`
	Specialty    string  `bson:"specialty" json:"specialty,omitempty"`
	Email        string  `bson:"email" json:"email,omitempty"`
	PhoneNumber  string  `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Status       string  `bson:"status" json:"status,omitempty"`
	ProfileImage string  `bson:"profileImage" json:"profileImage,omitempty"`
	Rating       float64 `bson:"rating" json:"rating,omitempty"`
}

// Provider is a care professional whose availability is scheduled
// through the engine.
type Provider struct {
	ID         string            `bson:"id" json:"id,omitempty"`
	Profile    Profile           `bson:"profile" json:"profile"`
	Scheduling SchedulingProfile `bson:"scheduling" json:"scheduling"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt,omitempty"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt,omitempty"`
}

// ProviderDTO is the public projection returned to callers.
type ProviderDTO struct {
	ID         string            `json:"id"`
	Profile    Profile           `json:"profile"`
	Scheduling SchedulingProfile `json:"scheduling"`
}

// ToDTO strips internal bookkeeping fields.
func (p *Provider) ToDTO() ProviderDTO {
	return ProviderDTO{
		ID:         p.ID,
		Profile:    p.Profile,
		Scheduling: p.Scheduling,
	}
}

// UpdateAvailabilityRequest is the payload for the provider availability
// editing flow.
type UpdateAvailabilityRequest struct {
	WeeklyAvailability          WeeklyAvailability `json:"weeklyAvailability" binding:"required"`
	Timezone                    string             `json:"timezone" binding:"required"`
	ConsultationDurationMinutes int                `json:"consultationDurationMinutes" binding:"required"`
}
