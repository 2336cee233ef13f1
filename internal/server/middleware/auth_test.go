package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/server/handlers"
	"github.com/iudanet/divelog/internal/server/storage"
)

// setupTestLogger creates a logger writing into buf
func setupTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fakeSessions is a SessionStorage backed by a map
type fakeSessions struct {
	sessions map[string]*models.Session
	err      error
}

func (f *fakeSessions) CreateSession(ctx context.Context, session *models.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessions) GetSession(ctx context.Context, id string) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	session, ok := f.sessions[id]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessions) DeleteSession(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessions) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

var testJWTConfig = handlers.JWTConfig{Secret: []byte("test-secret-key"), SessionTTL: time.Hour}

func issueToken(t *testing.T, sessions *fakeSessions, sessionID, user string, now time.Time) string {
	t.Helper()
	token, expiresAt, err := handlers.GenerateSessionToken(testJWTConfig, sessionID, user, now)
	require.NoError(t, err)
	sessions.sessions[sessionID] = &models.Session{ID: sessionID, User: user, ExpiresAt: expiresAt, CreatedAt: now}
	return token
}

func TestAuthMiddleware_Success(t *testing.T) {
	var logs bytes.Buffer
	sessions := &fakeSessions{sessions: map[string]*models.Session{}}
	token := issueToken(t, sessions, "sess-1", "diver@example.com", time.Now())

	handler := AuthMiddleware(setupTestLogger(&logs), testJWTConfig, sessions)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := handlers.GetSessionID(r.Context())
			require.True(t, ok)
			assert.Equal(t, "sess-1", sessionID)

			user, ok := handlers.GetUser(r.Context())
			require.True(t, ok)
			assert.Equal(t, "diver@example.com", user)

			_, _ = w.Write([]byte("OK"))
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotContains(t, logs.String(), token)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		header    func(t *testing.T, sessions *fakeSessions) string
		storeErr  error
		wantCode  int
		wantError string
	}{
		{
			name:      "missing header",
			header:    func(t *testing.T, sessions *fakeSessions) string { return "" },
			wantCode:  http.StatusUnauthorized,
			wantError: "unauthorized",
		},
		{
			name:      "basic scheme",
			header:    func(t *testing.T, sessions *fakeSessions) string { return "Basic dXNlcjpwYXNz" },
			wantCode:  http.StatusUnauthorized,
			wantError: "unauthorized",
		},
		{
			name:      "bearer without token",
			header:    func(t *testing.T, sessions *fakeSessions) string { return "Bearer " },
			wantCode:  http.StatusUnauthorized,
			wantError: "unauthorized",
		},
		{
			name:      "garbage token",
			header:    func(t *testing.T, sessions *fakeSessions) string { return "Bearer not.a.jwt" },
			wantCode:  http.StatusUnauthorized,
			wantError: "unauthorized",
		},
		{
			name: "expired token",
			header: func(t *testing.T, sessions *fakeSessions) string {
				return "Bearer " + issueToken(t, sessions, "sess-1", "diver@example.com", now.Add(-2*time.Hour))
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "unauthorized",
		},
		{
			name: "revoked session",
			header: func(t *testing.T, sessions *fakeSessions) string {
				token := issueToken(t, sessions, "sess-1", "diver@example.com", now)
				delete(sessions.sessions, "sess-1")
				return "Bearer " + token
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "session revoked",
		},
		{
			name: "session expired before token",
			header: func(t *testing.T, sessions *fakeSessions) string {
				token := issueToken(t, sessions, "sess-1", "diver@example.com", now)
				sessions.sessions["sess-1"].ExpiresAt = now.Add(-time.Minute)
				return "Bearer " + token
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "session expired",
		},
		{
			name: "session of another user",
			header: func(t *testing.T, sessions *fakeSessions) string {
				token := issueToken(t, sessions, "sess-1", "diver@example.com", now)
				sessions.sessions["sess-1"].User = "other@example.com"
				return "Bearer " + token
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "session expired",
		},
		{
			name: "storage error",
			header: func(t *testing.T, sessions *fakeSessions) string {
				return "Bearer " + issueToken(t, sessions, "sess-1", "diver@example.com", now)
			},
			storeErr:  errors.New("database is locked"),
			wantCode:  http.StatusInternalServerError,
			wantError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			sessions := &fakeSessions{sessions: map[string]*models.Session{}}
			header := tt.header(t, sessions)
			sessions.err = tt.storeErr

			called := false
			handler := AuthMiddleware(setupTestLogger(&logs), testJWTConfig, sessions)(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/trips", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.False(t, called, "next handler must not be called")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, w.Body.String())
		})
	}
}
