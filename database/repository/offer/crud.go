package offerRepo

import (
	"context"
	"errors"
	"time"

	"fixel/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoOfferRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferRepo returns an OfferRepository backed by MongoDB.
func NewMongoOfferRepo(db *mongo.Database) OfferRepository {
	return &mongoOfferRepo{coll: db.Collection("assignment_request")}
}

func (r *mongoOfferRepo) Insert(ctx context.Context, offer models.AssignmentOffer) (*models.AssignmentOffer, error) {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	offer.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *mongoOfferRepo) GetByID(ctx context.Context, id string) (*models.AssignmentOffer, error) {
	var offer models.AssignmentOffer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *mongoOfferRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.AssignmentOffer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []models.AssignmentOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *mongoOfferRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}
