package models

import "time"

// Notification is an in-app feed row written alongside each user push.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content,omitempty" json:"content,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReminderPayload is the asynq task payload for a scheduled booking
// reminder push. Target selects the recipient kind.
type ReminderPayload struct {
	ID        string `json:"id"` // user or technician ID
	BookingID string `json:"bookingId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
	Target    string `json:"target"` // "user" or "technician"
}
