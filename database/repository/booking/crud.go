package bookingRepo

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

type mongoBookingRepo struct {
	coll     *mongo.Collection
	itemColl *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll:     db.Collection("bookings"),
		itemColl: db.Collection("booking_item"),
	}
}

func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) GetByAssignmentID(ctx context.Context, assignmentID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"assignment_id": assignmentID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (r *mongoBookingRepo) SetAssignment(ctx context.Context, id, assignmentID, status string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "assignment_id": assignmentID}})
	return err
}

func (r *mongoBookingRepo) InsertItem(ctx context.Context, item models.BookingItem) (*models.BookingItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	if _, err := r.itemColl.InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoBookingRepo) GetItemsByBookingID(ctx context.Context, bookingID string) ([]models.BookingItem, error) {
	cursor, err := r.itemColl.Find(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.BookingItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
