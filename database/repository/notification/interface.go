package notificationRepo

import (
	"context"

	"fixel/models"
)

// NotificationRepository stores in-app notification rows.
type NotificationRepository interface {
	Insert(ctx context.Context, n models.Notification) (*models.Notification, error)
	GetByUser(ctx context.Context, userID string) ([]models.Notification, error)
}
