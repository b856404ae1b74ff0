package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"rideform/internal/models"
	"rideform/internal/repositories/interfaces"
	"rideform/internal/validators"
	"rideform/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CountSummary struct {
	Count  int64 `json:"count"`
	People int64 `json:"people"`
}

// RequestService orchestrates the intake pipeline and the authenticated
// read/delete operations over the same records.
type RequestService interface {
	Submit(ctx context.Context, input *models.RideRequestInput) (string, error)
	CountSummary(ctx context.Context) (*CountSummary, error)
	Delete(ctx context.Context, id, token string) error
}

type requestService struct {
	repo        interfaces.RideRequestRepository
	notifier    NotificationService
	deleteToken string
	logger      *logger.Logger
}

func NewRequestService(repo interfaces.RideRequestRepository, notifier NotificationService, deleteToken string, log *logger.Logger) RequestService {
	return &requestService{
		repo:        repo,
		notifier:    notifier,
		deleteToken: deleteToken,
		logger:      log,
	}
}

func (s *requestService) Submit(ctx context.Context, input *models.RideRequestInput) (string, error) {
	record, err := validators.ValidateRideRequest(input)
	if err != nil {
		return "", err
	}

	record.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	record.StartPoint.Geo = models.NewGeoPoint(record.StartPoint.Lat, record.StartPoint.Lon)

	id, err := s.repo.Insert(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to persist ride request: %w", err)
	}

	// Scheduled only after a successful insert; the response never waits
	// on delivery.
	s.notifier.Schedule(record)

	s.logger.WithField("id", id.Hex()).Info("ride request accepted")
	return id.Hex(), nil
}

func (s *requestService) CountSummary(ctx context.Context) (*CountSummary, error) {
	// Two independent reads; not snapshot-consistent under concurrent
	// inserts, which is fine for a monitoring endpoint.
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count ride requests: %w", err)
	}

	people, err := s.repo.SumPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum participants: %w", err)
	}

	return &CountSummary{Count: count, People: people}, nil
}

func (s *requestService) Delete(ctx context.Context, id, token string) error {
	if s.deleteToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.deleteToken)) != 1 {
		return ErrForbidden
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMalformedID
	}

	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to delete ride request: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.WithField("id", id).Info("ride request deleted")
	return nil
}
