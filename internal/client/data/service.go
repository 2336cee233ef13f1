// Package data loads the user's trips from the cloud and keeps the last
// successful result in the local cache.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/divelog/internal/client/storage"
	"github.com/iudanet/divelog/internal/models"
)

// LoadingState отражает состояние последней загрузки
type LoadingState string

const (
	StateIdle      LoadingState = "idle"
	StatePending   LoadingState = "pending"
	StateSucceeded LoadingState = "succeeded"
	StateFailed    LoadingState = "failed"
)

// ErrLoadInProgress возвращается при попытке начать вторую загрузку параллельно
var ErrLoadInProgress = errors.New("trips are already being loaded")

//go:generate moq -out fetcher_mock.go . TripFetcher
//go:generate moq -out service_mock.go . Service

// TripFetcher получает поездки пользователя из облака
type TripFetcher interface {
	FetchTrips(ctx context.Context, login models.Login) ([]models.Trip, error)
}

// Service определяет интерфейс клиентского data сервиса
type Service interface {
	// Load fetches trips for login and caches them on success
	Load(ctx context.Context, login models.Login) (*models.TripSnapshot, error)

	// Cached returns the last cached snapshot without network access
	Cached(ctx context.Context) (*models.TripSnapshot, error)

	// Clear drops the cached snapshot and resets the state to idle
	Clear(ctx context.Context) error

	// State returns the state of the last Load
	State() LoadingState
}

// service handles client-side trip loading
type service struct {
	fetcher TripFetcher
	trips   storage.TripStorage
	now     func() time.Time
	state   LoadingState
	mu      sync.Mutex
}

// NewService creates a new data service
func NewService(fetcher TripFetcher, trips storage.TripStorage) Service {
	return &service{
		fetcher: fetcher,
		trips:   trips,
		now:     time.Now,
		state:   StateIdle,
	}
}

func (s *service) setState(state LoadingState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// State returns the state of the last Load
func (s *service) State() LoadingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load fetches trips for login. A failure to write the cache is logged and
// does not fail the load.
func (s *service) Load(ctx context.Context, login models.Login) (*models.TripSnapshot, error) {
	s.mu.Lock()
	if s.state == StatePending {
		s.mu.Unlock()
		return nil, ErrLoadInProgress
	}
	s.state = StatePending
	s.mu.Unlock()

	trips, err := s.fetcher.FetchTrips(ctx, login)
	if err != nil {
		s.setState(StateFailed)
		return nil, fmt.Errorf("failed to load trips: %w", err)
	}

	snapshot := &models.TripSnapshot{
		FetchedAt: s.now().UTC(),
		User:      login.User,
		Trips:     trips,
	}

	if err := s.trips.SaveTrips(ctx, snapshot); err != nil {
		slog.Warn("failed to cache trips", "error", err)
	}

	s.setState(StateSucceeded)
	return snapshot, nil
}

// Cached returns the last cached snapshot
func (s *service) Cached(ctx context.Context) (*models.TripSnapshot, error) {
	snapshot, err := s.trips.GetTrips(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Clear drops the cached snapshot
func (s *service) Clear(ctx context.Context) error {
	if err := s.trips.DeleteTrips(ctx); err != nil {
		return fmt.Errorf("failed to delete cached trips: %w", err)
	}
	s.setState(StateIdle)
	return nil
}

// NewestFirst returns trips newest first, each with its dives newest first.
// The input is left unchanged.
func NewestFirst(trips []models.Trip) []models.Trip {
	out := make([]models.Trip, len(trips))
	for i, trip := range trips {
		dives := slices.Clone(trip.Dives)
		slices.Reverse(dives)
		out[len(trips)-1-i] = models.Trip{Name: trip.Name, Dives: dives}
	}
	return out
}

// FindDive returns the first dive with the given number and its trip
func FindDive(trips []models.Trip, number int) (*models.Trip, *models.Dive, bool) {
	for i := range trips {
		for j := range trips[i].Dives {
			if trips[i].Dives[j].Number == number {
				return &trips[i], &trips[i].Dives[j], true
			}
		}
	}
	return nil, nil, false
}
