package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"
	"telecare/services/booking"
	"telecare/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingService struct {
	hold *models.SlotHold
	appt *models.Appointment
	err  error
}

func (s *stubBookingService) HoldSlot(ctx context.Context, req models.HoldSlotRequest) (*models.SlotHold, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hold, nil
}

func (s *stubBookingService) ConfirmAppointment(ctx context.Context, req models.ConfirmAppointmentRequest) (*models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.appt, nil
}

func (s *stubBookingService) CancelAppointment(ctx context.Context, appointmentID, patientID string) error {
	return s.err
}

func (s *stubBookingService) GetPatientAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.appt == nil {
		return nil, nil
	}
	return []models.Appointment{*s.appt}, nil
}

func newBookingRouter(svc *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/booking/hold", h.HoldSlotHandler)
	r.POST("/api/booking/confirm", h.ConfirmAppointmentHandler)
	r.DELETE("/api/booking/appointments/:id", h.CancelAppointmentHandler)
	r.GET("/api/booking/patients/:id/appointments", h.GetPatientAppointmentsHandler)
	return r
}

const holdBody = `{"providerId":"prov-1","start":"2024-01-15T15:00:00Z","patientId":"patient-a"}`

func TestHoldSlotHandlerOK(t *testing.T) {
	svc := &stubBookingService{hold: &models.SlotHold{
		ProviderID: "prov-1",
		Start:      time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
		PatientID:  "patient-a",
	}}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/hold", strings.NewReader(holdBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"patientId":"patient-a"`)
}

func TestHoldSlotHandlerRejectsPartialPayload(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/hold",
		strings.NewReader(`{"providerId":"prov-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "slot unavailable",
			err:        booking.NewSlotUnavailableError("requested slot is no longer bookable"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "slot held",
			err:        booking.NewSlotHeldError("slot is currently held by another patient"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not owner",
			err:        booking.NewNotOwnerError("appointment belongs to a different patient"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "provider missing",
			err:        &scheduling.NotFoundError{ProviderID: "prov-1"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "upstream down",
			err:        &scheduling.UpstreamError{Op: "provider fetch", Err: assert.AnError},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBookingRouter(&stubBookingService{err: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", strings.NewReader(holdBody))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCancelAppointmentHandler(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/booking/appointments/appt-1?patientId=patient-a", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Missing patientId is rejected before the service runs.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/booking/appointments/appt-1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelAppointmentHandlerUnknownID(t *testing.T) {
	router := newBookingRouter(&stubBookingService{err: appointmentRepo.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/booking/appointments/ghost?patientId=patient-a", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPatientAppointmentsHandler(t *testing.T) {
	svc := &stubBookingService{appt: &models.Appointment{
		ID:        "appt-1",
		PatientID: "patient-a",
		Status:    models.AppointmentConfirmed,
	}}
	router := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/patients/patient-a/appointments", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"appt-1"`)
}
