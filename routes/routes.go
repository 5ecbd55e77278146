package routes

import (
	"time"

	"telecare/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterSchedulingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
}

// RegisterSchedulingRoutes registers the slot pipeline endpoints.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/scheduling")
	{
		api.GET("/providers/:id/slots", hb.Scheduling.GetBookableSlotsHandler)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/hold", hb.Booking.HoldSlotHandler)
		api.POST("/confirm", hb.Booking.ConfirmAppointmentHandler)
		api.DELETE("/appointments/:id", hb.Booking.CancelAppointmentHandler)
		api.GET("/patients/:id/appointments", hb.Booking.GetPatientAppointmentsHandler)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.Provider.RegisterProviderHandler)
		api.GET("/id/:id", hb.Provider.GetProviderByIDHandler)
		api.PUT("/availability/:id", hb.Provider.UpdateAvailabilityHandler)
		api.DELETE("/delete/:id", hb.Provider.DeleteProviderHandler)
	}
}
