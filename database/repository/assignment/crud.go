package assignmentRepo

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

type mongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo returns an AssignmentRepository backed by MongoDB.
func NewMongoAssignmentRepo(db *mongo.Database) AssignmentRepository {
	return &mongoAssignmentRepo{coll: db.Collection("assignment")}
}

func (r *mongoAssignmentRepo) Insert(ctx context.Context, assignment models.Assignment) (*models.Assignment, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	assignment.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *mongoAssignmentRepo) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&assignment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *mongoAssignmentRepo) GetByTechnician(ctx context.Context, technicianID string) ([]models.Assignment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"technician_id": technicianID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assignments []models.Assignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *mongoAssignmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}
