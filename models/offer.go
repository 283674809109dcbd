package models

import "time"

// AssignmentOffer statuses. Offers are append-only: a rejected offer is
// never reused, a fresh row is created per candidate. "expired" exists in
// the schema but no component currently transitions into it.
const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusRejected = "rejected"
	OfferStatusExpired  = "expired"
)

// AssignmentOffer proposes a specific booking to a specific technician.
// At most one pending offer exists per booking at any time.
type AssignmentOffer struct {
	ID           string    `bson:"id" json:"id"`
	BookingID    string    `bson:"booking_id" json:"booking_id"`
	TechnicianID string    `bson:"technician_id" json:"technician_id"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
