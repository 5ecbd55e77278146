package handlers

import (
	"errors"
	"net/http"

	providerRepo "telecare/database/repository/provider"
	"telecare/models"
	"telecare/services/provider"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider management endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

// NewProviderHandler constructs a ProviderHandler.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	dto, err := h.Service.GetProvider(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider": dto})
}

func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var p models.Provider
	if err := c.ShouldBindJSON(&p); err != nil {
		logger.Error("Invalid provider registration request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	dto, err := h.Service.RegisterProvider(c.Request.Context(), &p)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to register provider", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"provider": dto})
}

// UpdateAvailabilityHandler replaces the provider's weekly availability,
// timezone and consultation duration.
func (h *ProviderHandler) UpdateAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability update request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	dto, err := h.Service.UpdateAvailability(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", id)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Availability updated",
		"provider": dto,
	})
}

func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteProvider(c.Request.Context(), id); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}
