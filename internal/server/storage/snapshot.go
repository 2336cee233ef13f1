package storage

import (
	"context"

	"github.com/iudanet/divelog/internal/models"
)

// SnapshotStorage defines interface for per-user trips snapshots
type SnapshotStorage interface {
	// SaveSnapshot stores snapshot for snapshot.User, replacing the previous one
	SaveSnapshot(ctx context.Context, snapshot *models.TripSnapshot) error

	// GetSnapshot retrieves the snapshot of user
	// Returns ErrSnapshotNotFound if there is none
	GetSnapshot(ctx context.Context, user string) (*models.TripSnapshot, error)

	// DeleteSnapshot removes the snapshot of user. Missing snapshot is not an error.
	DeleteSnapshot(ctx context.Context, user string) error
}
