package assignmentRepo

import (
	"context"

	"fixel/models"
)

// AssignmentRepository stores confirmed technician-booking pairings.
// Lookup methods return (nil, nil) when no row matches.
type AssignmentRepository interface {
	Insert(ctx context.Context, assignment models.Assignment) (*models.Assignment, error)
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	GetByTechnician(ctx context.Context, technicianID string) ([]models.Assignment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
