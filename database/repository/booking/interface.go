package bookingRepo

import (
	"context"

	"fixel/models"
)

// BookingRepository provides keyed access to bookings and their items.
// Lookup methods return (nil, nil) when no row matches. Each write
// touches a single document; there are no cross-document transactions.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetByAssignmentID(ctx context.Context, assignmentID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// SetAssignment sets the booking's status and assignment reference in
	// one single-document update.
	SetAssignment(ctx context.Context, id, assignmentID, status string) error

	InsertItem(ctx context.Context, item models.BookingItem) (*models.BookingItem, error)
	GetItemsByBookingID(ctx context.Context, bookingID string) ([]models.BookingItem, error)
}
