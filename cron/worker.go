package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"salonbook/config"
	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/tasks"
	"salonbook/utils"
)

// ReminderSink delivers a booking reminder to the customer. The default
// sink only logs; SMS or email delivery plugs in here.
type ReminderSink interface {
	Deliver(ctx context.Context, booking *models.Booking, payload tasks.ReminderPayload) error
}

// LogReminderSink writes reminders to the application log.
type LogReminderSink struct{}

func (LogReminderSink) Deliver(ctx context.Context, booking *models.Booking, payload tasks.ReminderPayload) error {
	utils.GetLogger().Info("booking reminder",
		zap.String("bookingID", payload.BookingID),
		zap.String("companyID", payload.CompanyID),
		zap.String("date", payload.Date),
		zap.String("startTime", payload.StartTime),
		zap.String("customer", booking.CustomerName))
	return nil
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(repo bookingRepo.BookingRepository, sink ReminderSink) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask(repo, sink))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reminder worker gave up")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// handleReminderTask delivers the reminder and records it on the
// booking. Bookings cancelled after scheduling are skipped silently, as
// are bookings whose reminder already went out.
func handleReminderTask(repo bookingRepo.BookingRepository, sink ReminderSink) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		booking, err := repo.GetByID(p.BookingID)
		if err != nil {
			logger.Warn("reminder for unknown booking", zap.String("bookingID", p.BookingID), zap.Error(err))
			return nil
		}
		if !booking.Blocks() || booking.ReminderSent {
			return nil
		}

		if err := sink.Deliver(ctx, booking, p); err != nil {
			logger.Error("failed to deliver reminder", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		if err := repo.MarkReminderSent(p.BookingID); err != nil {
			logger.Warn("failed to mark reminder sent", zap.String("bookingID", p.BookingID), zap.Error(err))
		}
		return nil
	}
}

// StartExpirySweep cancels PreBooked bookings whose staff never
// confirmed them within the configured TTL. Runs every 15 minutes.
func StartExpirySweep(repo bookingRepo.BookingRepository) *cron.Cron {
	c := cron.New()
	logger := utils.GetLogger()

	_, err := c.AddFunc("*/15 * * * *", func() {
		ttl := time.Duration(config.AppConfig.PreBookedTTLHours) * time.Hour
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		cutoff := time.Now().Add(-ttl)
		n, err := repo.CancelStalePreBooked(cutoff)
		if err != nil {
			logger.Error("prebooked expiry sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("expired stale prebooked bookings", zap.Int64("count", n))
		}
	})
	if err != nil {
		logger.Fatal("failed to schedule prebooked expiry sweep", zap.Error(err))
	}

	c.Start()
	return c
}
