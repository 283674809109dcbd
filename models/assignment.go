package models

import "time"

// Assignment statuses.
const (
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

// Assignment is the confirmed pairing of one technician to one booking,
// created only after an offer is accepted. ServiceID and ScheduledAt are
// snapshots of the booking at acceptance time.
type Assignment struct {
	ID           string    `bson:"id" json:"id"`
	BookingID    string    `bson:"booking_id" json:"booking_id"`
	TechnicianID string    `bson:"technician_id" json:"technician_id"`
	ServiceID    string    `bson:"service_id" json:"service_id"`
	ScheduledAt  time.Time `bson:"scheduled_at" json:"scheduled_at"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// AssignmentDetail is the nested read shape for a technician's work list.
type AssignmentDetail struct {
	Assignment Assignment `json:"assignment"`
	Service    *Service   `json:"service,omitempty"`
	Booking    *Booking   `json:"booking,omitempty"`
}
