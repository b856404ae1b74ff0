package interfaces

import (
	"context"

	"rideform/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RideRequestRepository is the store shared by the intake service and the
// admin bot. It performs no validation; records reach it canonical.
type RideRequestRepository interface {
	// Insert assigns a fresh id and persists the record.
	Insert(ctx context.Context, record *models.RideRequest) (primitive.ObjectID, error)

	Count(ctx context.Context) (int64, error)

	// SumPeople totals the people field across all records. Records written
	// before the field existed count as one participant each.
	SumPeople(ctx context.Context) (int64, error)

	// FindRecent returns up to limit records, most recent first.
	FindRecent(ctx context.Context, limit int64) ([]*models.RideRequest, error)

	// DeleteByID reports false when no record matched.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)

	// EnsureIndexes is idempotent and runs once at service start.
	EnsureIndexes(ctx context.Context) error
}
