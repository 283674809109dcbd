package userRepo

import (
	"context"
	"errors"
	"time"

	"fixel/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{coll: db.Collection("userprofile")}
}

func (r *mongoUserRepo) Insert(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *mongoUserRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"fcm_token": token}})
	return err
}
