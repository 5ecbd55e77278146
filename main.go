// File: telecare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telecare/config"
	"telecare/cron"
	"telecare/database"
	appointmentRepo "telecare/database/repository/appointment"
	providerRepo "telecare/database/repository/provider"
	"telecare/handlers"
	"telecare/middleware"
	"telecare/routes"
	"telecare/services/booking"
	"telecare/services/notification"
	"telecare/services/provider"
	"telecare/services/scheduling"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitHoldCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	db := database.MongoClient.Database("telecare")
	if err := providerRepo.EnsureProviderIndexes(db.Collection("providers")); err != nil {
		logger.Sugar().Warnf("main: failed to ensure provider indexes: %v", err)
	}
	if err := appointmentRepo.EnsureAppointmentIndexes(db.Collection("appointments")); err != nil {
		logger.Sugar().Warnf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	zones := scheduling.SystemZones()
	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		ProviderRepo:    provRepo,
		AppointmentRepo: apptRepo,
		Zones:           zones,
		TrailingPolicy:  scheduling.TrailingPolicyFromString(config.AppConfig.TrailingSlotPolicy),
	}

	providerService := &provider.DefaultProviderService{
		Repo:  provRepo,
		Zones: zones,
	}

	reminderScheduler := cron.NewReminderScheduler(
		time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute,
	)
	bookingService := &booking.DefaultBookingService{
		Engine:          schedulingEngine,
		ProviderRepo:    provRepo,
		AppointmentRepo: apptRepo,
		Zones:           zones,
		Holds:           booking.NewRedisHoldStore(utils.GetHoldCacheClient()),
		Reminders:       reminderScheduler,
		HoldTTL:         time.Duration(config.AppConfig.SlotHoldTTLSeconds) * time.Second,
	}

	// Reminder delivery worker.
	cron.InitReminderWorker(notification.LogNotificationService{}, apptRepo)

	// Health monitoring.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetHoldCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Scheduling: handlers.NewSchedulingHandler(schedulingEngine),
		Booking:    handlers.NewBookingHandler(bookingService),
		Provider:   handlers.NewProviderHandler(providerService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
