package serviceRepo

import (
	"context"

	"fixel/models"
)

// ServiceRepository provides access to services and their sub-services.
// Lookup methods return (nil, nil) when no row matches.
type ServiceRepository interface {
	Insert(ctx context.Context, svc models.Service) (*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Service, error)
	Delete(ctx context.Context, id string) error

	InsertSubService(ctx context.Context, sub models.SubService) (*models.SubService, error)
	GetSubServicesByServiceID(ctx context.Context, serviceID string) ([]models.SubService, error)
	DeleteSubService(ctx context.Context, id string) error
}
