package storage

import (
	"context"

	"github.com/iudanet/divelog/internal/models"
)

//go:generate moq -out settings_mock.go . SettingsStorage

// SettingsStorage persists the login the user chose to save on this device.
// It only stores and returns values; deciding when to persist belongs to the
// session layer.
type SettingsStorage interface {
	// SaveSettings replaces the saved settings
	SaveSettings(ctx context.Context, settings *models.Settings) error

	// GetSettings returns the saved settings
	// Returns ErrSettingsNotFound if nothing has been saved
	GetSettings(ctx context.Context) (*models.Settings, error)

	// DeleteSettings removes the saved settings; deleting nothing is not an error
	DeleteSettings(ctx context.Context) error
}
