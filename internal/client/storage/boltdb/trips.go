package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/divelog/internal/client/storage"
	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/transform"
)

var snapshotKey = []byte("snapshot")

// SaveTrips stores the trips snapshot as zlib-compressed JSON
func (s *Storage) SaveTrips(ctx context.Context, snapshot *models.TripSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal trips snapshot: %w", err)
	}

	compressed, err := transform.Compress(data)
	if err != nil {
		return fmt.Errorf("failed to compress trips snapshot: %w", err)
	}

	return s.update(bucketTrips, func(bucket *bbolt.Bucket) error {
		if err := bucket.Put(snapshotKey, compressed); err != nil {
			return fmt.Errorf("failed to save trips snapshot: %w", err)
		}
		return nil
	})
}

// GetTrips retrieves the cached trips snapshot
func (s *Storage) GetTrips(ctx context.Context) (*models.TripSnapshot, error) {
	var compressed []byte

	err := s.view(bucketTrips, func(bucket *bbolt.Bucket) error {
		data := bucket.Get(snapshotKey)
		if data == nil {
			return storage.ErrTripsNotFound
		}
		// данные bbolt валидны только внутри транзакции
		compressed = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	data, err := transform.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress trips snapshot: %w", err)
	}

	snapshot := &models.TripSnapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trips snapshot: %w", err)
	}
	return snapshot, nil
}

// DeleteTrips removes the cached trips snapshot
func (s *Storage) DeleteTrips(ctx context.Context) error {
	return s.update(bucketTrips, func(bucket *bbolt.Bucket) error {
		if err := bucket.Delete(snapshotKey); err != nil {
			return fmt.Errorf("failed to delete trips snapshot: %w", err)
		}
		return nil
	})
}
