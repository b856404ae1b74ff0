package mongodb

import (
	"context"
	"fmt"

	"rideform/internal/models"
	"rideform/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rideRequestRepository struct {
	collection *mongo.Collection
}

func NewRideRequestRepository(collection *mongo.Collection) interfaces.RideRequestRepository {
	return &rideRequestRepository{collection: collection}
}

func (r *rideRequestRepository) Insert(ctx context.Context, record *models.RideRequest) (primitive.ObjectID, error) {
	record.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert ride request: %w", err)
	}

	return record.ID, nil
}

func (r *rideRequestRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count ride requests: %w", err)
	}
	return count, nil
}

func (r *rideRequestRepository) SumPeople(ctx context.Context) (int64, error) {
	// $ifNull keeps pre-people records counting as one participant,
	// matching the intake default.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$people", 1}},
			}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum people: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode people sum: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *rideRequestRepository) FindRecent(ctx context.Context, limit int64) ([]*models.RideRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent ride requests: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*models.RideRequest
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode ride requests: %w", err)
	}

	return records, nil
}

func (r *rideRequestRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete ride request: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *rideRequestRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		// Declared for scheduling lookups; nothing queries it yet.
		{Keys: bson.D{{Key: "day", Value: 1}, {Key: "earliest_time", Value: 1}}},
		{Keys: bson.D{{Key: "start_point.geo", Value: "2dsphere"}}},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
