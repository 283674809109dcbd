package serviceRepo

import (
	"context"
	"errors"
	"time"

	"fixel/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoServiceRepo struct {
	coll    *mongo.Collection
	subColl *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by MongoDB.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepo{
		coll:    db.Collection("service"),
		subColl: db.Collection("sub_service"),
	}
}

func (r *mongoServiceRepo) Insert(ctx context.Context, svc models.Service) (*models.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *mongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoServiceRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Service, error) {
	setFields := bson.M{}
	for k, v := range updates {
		setFields[k] = v
	}
	setFields["updated_at"] = time.Now()

	res := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": setFields})
	if errors.Is(res.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if res.Err() != nil {
		return nil, res.Err()
	}
	return r.GetByID(ctx, id)
}

func (r *mongoServiceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("service not found")
	}
	return nil
}

func (r *mongoServiceRepo) InsertSubService(ctx context.Context, sub models.SubService) (*models.SubService, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	sub.CreatedAt = time.Now()

	if _, err := r.subColl.InsertOne(ctx, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *mongoServiceRepo) GetSubServicesByServiceID(ctx context.Context, serviceID string) ([]models.SubService, error) {
	cursor, err := r.subColl.Find(ctx, bson.M{"service_id": serviceID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.SubService
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *mongoServiceRepo) DeleteSubService(ctx context.Context, id string) error {
	res, err := r.subColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("sub-service not found")
	}
	return nil
}
