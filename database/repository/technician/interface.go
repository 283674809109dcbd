package technicianRepo

import (
	"context"

	"fixel/models"
)

// TechnicianRepository provides keyed access to technicians. Lookup
// methods return (nil, nil) when no row matches.
type TechnicianRepository interface {
	Insert(ctx context.Context, tech models.Technician) (*models.Technician, error)
	GetByID(ctx context.Context, id string) (*models.Technician, error)
	GetByEmail(ctx context.Context, email string) (*models.Technician, error)
	// GetByProviderRole returns all technicians whose provider role matches,
	// in the store's natural return order. The dispatch engine depends on
	// that order being stable; it makes no fairness claim beyond it.
	GetByProviderRole(ctx context.Context, role string) ([]models.Technician, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}
