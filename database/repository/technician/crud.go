package technicianRepo

import (
	"context"
	"errors"
	"time"

	"fixel/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo returns a TechnicianRepository backed by MongoDB.
func NewMongoTechnicianRepo(db *mongo.Database) TechnicianRepository {
	return &mongoTechnicianRepo{coll: db.Collection("technician")}
}

func (r *mongoTechnicianRepo) Insert(ctx context.Context, tech models.Technician) (*models.Technician, error) {
	if tech.ID == "" {
		tech.ID = uuid.New().String()
	}
	tech.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, tech); err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *mongoTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	var tech models.Technician
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tech)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *mongoTechnicianRepo) GetByEmail(ctx context.Context, email string) (*models.Technician, error) {
	var tech models.Technician
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&tech)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tech, nil
}

func (r *mongoTechnicianRepo) GetByProviderRole(ctx context.Context, role string) ([]models.Technician, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"provider_role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var techs []models.Technician
	if err := cursor.All(ctx, &techs); err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *mongoTechnicianRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"fcm_token": token}})
	return err
}

func (r *mongoTechnicianRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("technician not found")
	}
	return nil
}
