package booking

import (
	"context"
	"time"

	"fixel/models"
)

// CreateResult carries the new booking plus whatever the dispatch pass
// produced. Offer is nil when no technician was eligible; booking
// creation succeeds either way.
type CreateResult struct {
	Booking *models.Booking         `json:"booking"`
	Offer   *models.AssignmentOffer `json:"offer,omitempty"`
	Items   []models.BookingItem    `json:"items,omitempty"`
}

// CancelResult reports a cancellation. AlreadyCancelled marks the
// idempotent second call, which performs no write.
type CancelResult struct {
	Booking          *models.Booking `json:"booking"`
	Message          string          `json:"message"`
	AlreadyCancelled bool            `json:"-"`
}

// Service orchestrates a booking's life from creation to terminal state.
type Service interface {
	Create(ctx context.Context, userID, serviceID string, scheduledAt time.Time, subServiceIDs []string) (*CreateResult, error)
	Cancel(ctx context.Context, userID, bookingID string) (*CancelResult, error)
	// UpdateStatus propagates a technician-reported status to both the
	// booking and the assignment record.
	UpdateStatus(ctx context.Context, technicianID, assignmentID, status string) (*models.Booking, error)

	ListByUser(ctx context.Context, userID string) ([]models.BookingDetail, error)
	GetByID(ctx context.Context, userID, bookingID string) (*models.BookingDetail, error)
	ListAssignments(ctx context.Context, technicianID string) ([]models.AssignmentDetail, error)
}
