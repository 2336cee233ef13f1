package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/divelog/internal/client/api"
	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/server/storage"
	"github.com/iudanet/divelog/internal/validation"
	pkgapi "github.com/iudanet/divelog/pkg/api"
)

// TripFetcher получает поездки пользователя из облака
type TripFetcher interface {
	FetchTrips(ctx context.Context, login models.Login) ([]models.Trip, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger    *slog.Logger
	fetcher   TripFetcher
	sessions  storage.SessionStorage
	snapshots storage.SnapshotStorage
	now       func() time.Time
	jwtConfig JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(
	logger *slog.Logger,
	fetcher TripFetcher,
	sessions storage.SessionStorage,
	snapshots storage.SnapshotStorage,
	jwtConfig JWTConfig,
) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		fetcher:   fetcher,
		sessions:  sessions,
		snapshots: snapshots,
		now:       time.Now,
		jwtConfig: jwtConfig,
	}
}

// Login обрабатывает POST /api/v1/auth/login
// Проверяет логин в облаке, сохраняет снимок поездок и выдает токен сессии
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req pkgapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	if err := validation.ValidateLogin(req.User, req.Password); err != nil {
		h.logger.WarnContext(ctx, "invalid login", slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, "invalid login", err.Error())
		return
	}
	login := models.Login{User: req.User, Password: req.Password}

	trips, err := h.fetcher.FetchTrips(ctx, login)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			h.logger.WarnContext(ctx, "login failed: cloud rejected credentials", slog.String("user", req.User))
			sendError(h.logger, w, http.StatusUnauthorized, "invalid credentials", "")
		case errors.Is(err, api.ErrNoTripData):
			h.logger.WarnContext(ctx, "login failed: no trip data", slog.String("user", req.User))
			sendError(h.logger, w, http.StatusNotFound, "no trip data", "")
		default:
			h.logger.ErrorContext(ctx, "failed to fetch trips", slog.Any("error", err))
			sendError(h.logger, w, http.StatusBadGateway, "cloud unavailable", "")
		}
		return
	}

	now := h.now().UTC()
	snapshot := &models.TripSnapshot{FetchedAt: now, User: login.User, Trips: trips}
	if err := h.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		h.logger.ErrorContext(ctx, "failed to save trips snapshot", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	sessionID := uuid.New().String()
	token, expiresAt, err := GenerateSessionToken(h.jwtConfig, sessionID, login.User, now)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate session token", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	session := &models.Session{
		ID:        sessionID,
		User:      login.User,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := h.sessions.CreateSession(ctx, session); err != nil {
		h.logger.ErrorContext(ctx, "failed to create session", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("user", login.User),
		slog.String("session_id", sessionID),
		slog.Int("trips", len(trips)))

	resp := pkgapi.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int64(h.jwtConfig.SessionTTL.Seconds()),
		Trips:       len(trips),
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Отзывает сессию и удаляет снимок поездок. Требует AuthMiddleware.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := GetSessionID(ctx)
	user, userOK := GetUser(ctx)
	if !ok || !userOK {
		sendError(h.logger, w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.sessions.DeleteSession(ctx, sessionID); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			sendError(h.logger, w, http.StatusUnauthorized, "session not found", "")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete session", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	if err := h.snapshots.DeleteSnapshot(ctx, user); err != nil {
		// Сессия уже отозвана, снимок удалится при следующем входе
		h.logger.WarnContext(ctx, "failed to delete trips snapshot", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged out successfully",
		slog.String("user", user),
		slog.String("session_id", sessionID))

	w.WriteHeader(http.StatusNoContent)
}
