package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/server/storage"
	"github.com/iudanet/divelog/internal/transform"
)

// SaveSnapshot stores the trips of snapshot.User as zlib-compressed JSON
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *models.TripSnapshot) error {
	data, err := json.Marshal(snapshot.Trips)
	if err != nil {
		return fmt.Errorf("failed to marshal trips: %w", err)
	}

	compressed, err := transform.Compress(data)
	if err != nil {
		return fmt.Errorf("failed to compress trips: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO trip_snapshots (user, fetched_at, data)
		VALUES (?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, snapshot.User, snapshot.FetchedAt.UnixMilli(), compressed); err != nil {
		return fmt.Errorf("failed to save trips snapshot: %w", err)
	}

	return nil
}

// GetSnapshot retrieves the snapshot of user
func (s *Storage) GetSnapshot(ctx context.Context, user string) (*models.TripSnapshot, error) {
	query := `
		SELECT fetched_at, data
		FROM trip_snapshots
		WHERE user = ?
	`

	var fetchedAt int64
	var compressed []byte

	err := s.db.QueryRowContext(ctx, query, user).Scan(&fetchedAt, &compressed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get trips snapshot: %w", err)
	}

	data, err := transform.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress trips snapshot: %w", err)
	}

	snapshot := &models.TripSnapshot{
		FetchedAt: time.UnixMilli(fetchedAt).UTC(),
		User:      user,
	}
	if err := json.Unmarshal(data, &snapshot.Trips); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trips snapshot: %w", err)
	}

	return snapshot, nil
}

// DeleteSnapshot removes the snapshot of user
func (s *Storage) DeleteSnapshot(ctx context.Context, user string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM trip_snapshots WHERE user = ?`, user); err != nil {
		return fmt.Errorf("failed to delete trips snapshot: %w", err)
	}
	return nil
}
