package storage

import (
	"context"

	"github.com/iudanet/divelog/internal/models"
)

//go:generate moq -out trips_mock.go . TripStorage

// TripStorage caches the last trips snapshot fetched from the cloud
type TripStorage interface {
	// SaveTrips replaces the cached snapshot
	SaveTrips(ctx context.Context, snapshot *models.TripSnapshot) error

	// GetTrips returns the cached snapshot
	// Returns ErrTripsNotFound if nothing has been cached
	GetTrips(ctx context.Context) (*models.TripSnapshot, error)

	// DeleteTrips drops the cached snapshot; deleting nothing is not an error
	DeleteTrips(ctx context.Context) error
}
