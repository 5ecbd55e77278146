package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"
	"telecare/services/booking"
	"telecare/services/scheduling"
	"telecare/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the hold/confirm/cancel flow.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// bookingStatus maps service errors onto HTTP responses shared by the
// hold and confirm endpoints.
func bookingStatus(c *gin.Context, err error) {
	var bookingErr *booking.BookingError
	var notFound *scheduling.NotFoundError
	var invalidArg *scheduling.InvalidArgumentError
	var upstream *scheduling.UpstreamError

	switch {
	case errors.As(err, &bookingErr):
		switch bookingErr.Code {
		case booking.CodeNotOwner:
			utils.JSONError(c, http.StatusForbidden, "Not allowed", bookingErr.Message)
		default:
			utils.JSONError(c, http.StatusConflict, "Slot not bookable", bookingErr.Message)
		}
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Provider not found", notFound.Error())
	case errors.As(err, &invalidArg):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", invalidArg.Error())
	case errors.As(err, &upstream):
		utils.JSONError(c, http.StatusServiceUnavailable, "Booking temporarily unavailable", "please retry")
	case errors.Is(err, appointmentRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Appointment not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
	}
}

// HoldSlotHandler places a short-lived hold on a bookable slot.
func (h *BookingHandler) HoldSlotHandler(c *gin.Context) {
	var req models.HoldSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	hold, err := h.Service.HoldSlot(c.Request.Context(), req)
	if err != nil {
		bookingStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hold": hold})
}

// ConfirmAppointmentHandler turns a bookable slot into a confirmed appointment.
func (h *BookingHandler) ConfirmAppointmentHandler(c *gin.Context) {
	var req models.ConfirmAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	appt, err := h.Service.ConfirmAppointment(c.Request.Context(), req)
	if err != nil {
		bookingStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelAppointmentHandler cancels a patient's appointment.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	appointmentID := c.Param("id")
	patientID := c.Query("patientId")
	if patientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing patientId", "query parameter 'patientId' is required")
		return
	}

	if err := h.Service.CancelAppointment(c.Request.Context(), appointmentID, patientID); err != nil {
		bookingStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// GetPatientAppointmentsHandler lists a patient's appointments.
func (h *BookingHandler) GetPatientAppointmentsHandler(c *gin.Context) {
	patientID := c.Param("id")
	appts, err := h.Service.GetPatientAppointments(c.Request.Context(), patientID)
	if err != nil {
		bookingStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
