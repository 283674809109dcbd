package models

import "time"

// Booking lifecycle statuses. A booking is never deleted; it moves
// through these states until it reaches a terminal one.
const (
	BookingStatusPending   = "pending"
	BookingStatusAssigned  = "assigned"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a user's request for a service at a scheduled time.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	ServiceID    string    `bson:"service_id" json:"service_id"`
	ScheduledAt  time.Time `bson:"scheduled_at" json:"scheduled_at"`
	Status       string    `bson:"status" json:"status"`
	AssignmentID string    `bson:"assignment_id,omitempty" json:"assignment_id,omitempty"` // set once an offer is accepted
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// BookingItem is a priced add-on attached to a booking. The price is a
// snapshot taken at booking time so later sub-service price changes do
// not affect historical bookings.
type BookingItem struct {
	ID           string    `bson:"id" json:"id"`
	BookingID    string    `bson:"booking_id" json:"booking_id"`
	SubServiceID string    `bson:"sub_service_id" json:"sub_service_id"`
	Price        int64     `bson:"price" json:"price"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// BookingDetail is the nested read shape returned to clients.
type BookingDetail struct {
	Booking    Booking       `json:"booking"`
	Service    *Service      `json:"service,omitempty"`
	Assignment *Assignment   `json:"assignment,omitempty"`
	Technician *Technician   `json:"technician,omitempty"`
	Items      []BookingItem `json:"items,omitempty"`
}
