package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/divelog/internal/client/storage"
	"github.com/iudanet/divelog/internal/models"
)

var settingsKey = []byte("login")

// SaveSettings stores the saved login
func (s *Storage) SaveSettings(ctx context.Context, settings *models.Settings) error {
	return s.update(bucketSettings, func(bucket *bbolt.Bucket) error {
		// Сериализуем данные в JSON
		data, err := json.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}

		if err := bucket.Put(settingsKey, data); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		return nil
	})
}

// GetSettings retrieves the saved login
func (s *Storage) GetSettings(ctx context.Context) (*models.Settings, error) {
	var settings *models.Settings

	err := s.view(bucketSettings, func(bucket *bbolt.Bucket) error {
		data := bucket.Get(settingsKey)
		if data == nil {
			return storage.ErrSettingsNotFound
		}

		settings = &models.Settings{}
		if err := json.Unmarshal(data, settings); err != nil {
			return fmt.Errorf("failed to unmarshal settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// DeleteSettings removes the saved login
func (s *Storage) DeleteSettings(ctx context.Context) error {
	return s.update(bucketSettings, func(bucket *bbolt.Bucket) error {
		if err := bucket.Delete(settingsKey); err != nil {
			return fmt.Errorf("failed to delete settings: %w", err)
		}
		return nil
	})
}
