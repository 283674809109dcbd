package models

import "time"

// UserProfile is a registered customer. The profile row doubles as the
// registration check behind the auth guard: a valid token whose subject
// has no profile row is authenticated but not a customer.
type UserProfile struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	MobNo        string    `bson:"mob_no,omitempty" json:"mob_no,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
