package models

import "time"

// Service is a bookable home service. ProviderRole is the capability tag
// used to match a booking with technicians who can fulfil it.
type Service struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Price        int64     `bson:"price" json:"price"`
	ProviderRole string    `bson:"provider_role" json:"provider_role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// SubService is a priced add-on under a parent service.
type SubService struct {
	ID          string    `bson:"id" json:"id"`
	ServiceID   string    `bson:"service_id" json:"service_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       int64     `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// ServiceDetail bundles a service with its sub-services for read endpoints.
type ServiceDetail struct {
	Service     Service      `json:"service"`
	SubServices []SubService `json:"sub_services"`
}
