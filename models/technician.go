package models

import "time"

// Technician is an actor who fulfils bookings whose service role matches
// their provider role. FCMToken is optional; a technician without one
// simply never receives push notifications.
type Technician struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ProviderRole string    `bson:"provider_role" json:"provider_role"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
