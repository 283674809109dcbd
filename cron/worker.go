package cron

import (
	"context"
	"encoding/json"
	"time"

	"fixel/config"
	"fixel/models"
	"fixel/services/notification"
	"fixel/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		zap.L().Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			zap.L().Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				zap.L().Fatal("reminder worker gave up after max attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleReminderTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			zap.L().Error("invalid reminder payload", zap.Error(err))
			return err
		}

		data := map[string]string{
			"bookingId": p.BookingID,
			"fireDate":  p.FireDate,
		}

		var err error
		switch p.Target {
		case "user":
			err = notifSvc.SendUserPush(ctx, p.ID, p.Title, p.Body, data)
		case "technician":
			err = notifSvc.SendTechnicianPush(ctx, p.ID, p.Title, p.Body, data)
		default:
			zap.L().Warn("unknown reminder target", zap.String("target", p.Target))
			return nil
		}

		if err != nil {
			zap.L().Error("reminder delivery failed",
				zap.String("target", p.Target), zap.String("id", p.ID), zap.Error(err))
		}
		return err
	}
}
