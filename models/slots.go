package models

import "time"

// BookableSlots is the response of the slot pipeline: candidate start
// instants as RFC 3339 UTC strings, plus the duration and timezone the
// caller needs to render them consistently.
type BookableSlots struct {
	Dates    []string `json:"dates"`
	Duration int      `json:"duration"`
	Timezone string   `json:"timezone"`
}

// EmptyBookableSlots is the exact sentinel existing callers expect when
// nothing is bookable.
func EmptyBookableSlots() BookableSlots {
	return BookableSlots{
		Dates:    []string{},
		Duration: 0,
		Timezone: "UTC",
	}
}

// SlotHold is a short-lived claim a patient places on a slot between
// seeing it listed and confirming the booking.
type SlotHold struct {
	ProviderID string    `json:"providerId"`
	Start      time.Time `json:"start"`
	PatientID  string    `json:"patientId"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// HoldSlotRequest is the payload for placing a slot hold.
type HoldSlotRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	Start      string `json:"start" binding:"required"` // RFC 3339 UTC instant
	PatientID  string `json:"patientId" binding:"required"`
}

// ConfirmAppointmentRequest is the payload for turning a held or listed
// slot into a confirmed appointment.
type ConfirmAppointmentRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	PatientID  string `json:"patientId" binding:"required"`
	Start      string `json:"start" binding:"required"` // RFC 3339 UTC instant
	Reason     string `json:"reason,omitempty"`
}
