package notification

import (
	"context"
	"fmt"
	"time"

	"fixel/database/repository"
	"fixel/models"
	"fixel/services/tasks"
	"fixel/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultService is the production implementation. FCM and the asynq
// client are optional: when nil the corresponding sends are skipped,
// which keeps the service usable in tests and minimal deployments.
type DefaultService struct {
	Users         repository.UserRepository
	Technicians   repository.TechnicianRepository
	Notifications repository.NotificationRepository
	FCM           *messaging.Client
	AsynqClient   *asynq.Client
	Mailer        *Mailer
}

// SendUserPush looks up the user's FCM token and sends a push. An in-app
// notification row is written regardless of push delivery, so the feed
// stays complete for users without a registered device.
func (s *DefaultService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	if _, err := s.Notifications.Insert(ctx, models.Notification{
		UserID:  userID,
		Title:   title,
		Content: body,
	}); err != nil {
		utils.GetLogger().Warn("failed to persist notification row",
			zap.String("userID", userID), zap.Error(err))
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("SendUserPush: user %s has no FCM token", userID)
	}
	return s.sendPush(ctx, u.FCMToken, title, body, withRole(data, "user"))
}

// SendTechnicianPush looks up the technician's FCM token and sends a push.
func (s *DefaultService) SendTechnicianPush(ctx context.Context, technicianID, title, body string, data map[string]string) error {
	t, err := s.Technicians.GetByID(ctx, technicianID)
	if err != nil {
		return fmt.Errorf("SendTechnicianPush: could not find technician %s: %w", technicianID, err)
	}
	if t == nil || t.FCMToken == "" {
		return fmt.Errorf("SendTechnicianPush: technician %s has no FCM token", technicianID)
	}
	return s.sendPush(ctx, t.FCMToken, title, body, withRole(data, "technician"))
}

func (s *DefaultService) sendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	if s.FCM == nil {
		return fmt.Errorf("push skipped: FCM client not configured")
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

// SendEmail delegates to the SMTP mailer.
func (s *DefaultService) SendEmail(to, subject, body string) error {
	if s.Mailer == nil {
		return fmt.Errorf("email skipped: mailer not configured")
	}
	return s.Mailer.Send(to, subject, body)
}

// ScheduleBookingReminder enqueues a reminder push one hour before the
// booking's scheduled time. Bookings scheduled sooner than that get no
// reminder.
func (s *DefaultService) ScheduleBookingReminder(ctx context.Context, userID, bookingID string, scheduledAt time.Time) error {
	if s.AsynqClient == nil {
		return fmt.Errorf("reminder skipped: asynq client not configured")
	}

	fireAt := scheduledAt.Add(-time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		ID:        userID,
		BookingID: bookingID,
		Title:     "Upcoming booking",
		Body:      fmt.Sprintf("Your technician arrives at %s.", scheduledAt.Format("15:04, Jan 2")),
		FireDate:  fireAt.Format(time.RFC3339),
		Target:    "user",
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

func withRole(data map[string]string, role string) map[string]string {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}
	return data
}
