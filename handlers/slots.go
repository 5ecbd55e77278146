package handlers

import (
	"errors"
	"net/http"
	"time"

	"telecare/services/scheduling"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the slot pipeline over HTTP.
type SchedulingHandler struct {
	Engine scheduling.SchedulingEngine
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(engine scheduling.SchedulingEngine) *SchedulingHandler {
	return &SchedulingHandler{Engine: engine}
}

// GetBookableSlotsHandler returns the bookable slots for a provider and
// date. The optional "now" query (RFC 3339) overrides the clock, which
// keeps responses reproducible for API consumers' test suites.
func (h *SchedulingHandler) GetBookableSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date", "query parameter 'date' (YYYY-MM-DD) is required")
		return
	}

	now := time.Now().UTC()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid now", "query parameter 'now' must be RFC 3339")
			return
		}
		now = parsed.UTC()
	}

	slots, err := h.Engine.GetBookableSlots(c.Request.Context(), providerID, date, now)
	if err != nil {
		var invalidArg *scheduling.InvalidArgumentError
		var notFound *scheduling.NotFoundError
		var profileData *scheduling.ProfileDataError
		var upstream *scheduling.UpstreamError

		switch {
		case errors.As(err, &invalidArg):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", invalidArg.Error())
		case errors.As(err, &notFound):
			utils.JSONError(c, http.StatusNotFound, "Provider not found", notFound.Error())
		case errors.As(err, &profileData):
			// Corrupt stored data, not caller misuse.
			utils.JSONError(c, http.StatusInternalServerError, "Provider scheduling data is unusable", profileData.Error())
		case errors.As(err, &upstream):
			utils.JSONError(c, http.StatusServiceUnavailable, "Scheduling data temporarily unavailable", "please retry")
		default:
			logger.Error("unexpected scheduling failure", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to compute slots", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, slots)
}
