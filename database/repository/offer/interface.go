package offerRepo

import (
	"context"

	"fixel/models"
)

// OfferRepository stores assignment offers. Offer rows are append-only:
// status is the only mutable field. Lookup methods return (nil, nil)
// when no row matches.
type OfferRepository interface {
	Insert(ctx context.Context, offer models.AssignmentOffer) (*models.AssignmentOffer, error)
	GetByID(ctx context.Context, id string) (*models.AssignmentOffer, error)
	// GetByBookingID returns the full offer history for a booking in
	// ascending creation order.
	GetByBookingID(ctx context.Context, bookingID string) ([]models.AssignmentOffer, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
