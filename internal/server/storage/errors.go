package storage

import "errors"

// Common storage errors
var (
	// ErrSessionNotFound indicates that session was not found or was revoked
	ErrSessionNotFound = errors.New("session not found")

	// ErrSnapshotNotFound indicates that no trips snapshot is stored for the user
	ErrSnapshotNotFound = errors.New("trips snapshot not found")
)
