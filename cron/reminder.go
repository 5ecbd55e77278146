package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"telecare/config"
	appointmentRepo "telecare/database/repository/appointment"
	"telecare/models"
	"telecare/services/notification"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// AsynqReminderScheduler enqueues reminder tasks that fire a configured
// lead time before the appointment starts.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler builds the asynq client from app config.
func NewReminderScheduler(lead time.Duration) *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &AsynqReminderScheduler{client: client, lead: lead}
}

// ScheduleAppointmentReminder enqueues a reminder for the appointment.
// Appointments starting sooner than the lead time get an immediate task.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	payload, err := json.Marshal(appt)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	fireAt := appt.StartTime.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		_, err = s.client.EnqueueContext(ctx, task)
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(notifSvc, appts))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var appt models.Appointment
		if err := json.Unmarshal(task.Payload(), &appt); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		// Cancellation keeps the queued task; re-read current state at
		// delivery time instead of trusting the enqueued snapshot.
		current, err := appts.GetByID(ctx, appt.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrNotFound) {
				return nil
			}
			log.Printf("[ReminderHandler] failed to load appointment %s: %v", appt.ID, err)
			return err
		}
		if current.Status != models.AppointmentConfirmed {
			return nil
		}

		if err := notifSvc.SendAppointmentReminder(ctx, *current); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}
