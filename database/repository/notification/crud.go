package notificationRepo

import (
	"context"
	"time"

	"fixel/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo(db *mongo.Database) NotificationRepository {
	return &mongoNotificationRepo{coll: db.Collection("notifications")}
}

func (r *mongoNotificationRepo) Insert(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *mongoNotificationRepo) GetByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
