package handlers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockSessionStorage is an in-memory SessionStorage for testing
type mockSessionStorage struct {
	sessions    map[string]*models.Session
	createError error
	deleteError error
	mu          sync.Mutex
}

func newMockSessionStorage() *mockSessionStorage {
	return &mockSessionStorage{sessions: make(map[string]*models.Session)}
}

func (m *mockSessionStorage) CreateSession(ctx context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return m.createError
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionStorage) GetSession(ctx context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockSessionStorage) DeleteSession(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return m.deleteError
	}
	if _, ok := m.sessions[id]; !ok {
		return storage.ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionStorage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted := 0
	for id, session := range m.sessions {
		if !session.ExpiresAt.After(now) {
			delete(m.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

// mockSnapshotStorage is an in-memory SnapshotStorage for testing
type mockSnapshotStorage struct {
	snapshots map[string]*models.TripSnapshot
	saveError error
	getError  error
	mu        sync.Mutex
}

func newMockSnapshotStorage() *mockSnapshotStorage {
	return &mockSnapshotStorage{snapshots: make(map[string]*models.TripSnapshot)}
}

func (m *mockSnapshotStorage) SaveSnapshot(ctx context.Context, snapshot *models.TripSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.snapshots[snapshot.User] = snapshot
	return nil
}

func (m *mockSnapshotStorage) GetSnapshot(ctx context.Context, user string) (*models.TripSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	snapshot, ok := m.snapshots[user]
	if !ok {
		return nil, storage.ErrSnapshotNotFound
	}
	return snapshot, nil
}

func (m *mockSnapshotStorage) DeleteSnapshot(ctx context.Context, user string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, user)
	return nil
}

// fakeFetcher отдает заранее заданный результат
type fakeFetcher struct {
	trips []models.Trip
	err   error
	calls []models.Login
}

func (f *fakeFetcher) FetchTrips(ctx context.Context, login models.Login) ([]models.Trip, error) {
	f.calls = append(f.calls, login)
	if f.err != nil {
		return nil, f.err
	}
	return f.trips, nil
}

// recordingObserver запоминает операции с токенами
type recordingObserver struct {
	ops []string
}

func (o *recordingObserver) ObserveShare(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	o.ops = append(o.ops, operation+":"+status)
}

func testTrips() []models.Trip {
	return []models.Trip{
		{Name: "Red Sea", Dives: []models.Dive{
			{Number: 1, Date: "2024-05-01", Time: "09:00:00", Location: "Reef", MaxDepth: 12000, Duration: 1800,
				Samples: []models.Sample{{0, 0, 0, 0}, {60, 5000, 200000, 300000}}},
		}},
	}
}
