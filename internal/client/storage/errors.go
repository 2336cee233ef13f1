package storage

import "errors"

// Common client storage errors
var (
	// ErrSettingsNotFound indicates that no login has been saved on this device
	ErrSettingsNotFound = errors.New("saved settings not found")

	// ErrTripsNotFound indicates that no trips snapshot has been cached yet
	ErrTripsNotFound = errors.New("cached trips not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
