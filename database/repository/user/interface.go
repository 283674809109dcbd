package userRepo

import (
	"context"

	"fixel/models"
)

// UserRepository provides keyed access to customer profiles. Lookup
// methods return (nil, nil) when no row matches so callers choose the
// error semantics.
type UserRepository interface {
	Insert(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}
