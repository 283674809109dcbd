package notification

import (
	"context"
	"time"
)

// Service defines best-effort notification delivery. Every method may
// fail; callers log the error and move on. A delivery failure never
// affects the outcome of the operation that triggered it.
type Service interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendTechnicianPush(ctx context.Context, technicianID, title, body string, data map[string]string) error
	SendEmail(to, subject, body string) error
	// ScheduleBookingReminder enqueues a reminder push to fire shortly
	// before the booking's scheduled time.
	ScheduleBookingReminder(ctx context.Context, userID, bookingID string, scheduledAt time.Time) error
}
