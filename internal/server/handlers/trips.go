package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/divelog/internal/server/storage"
	"github.com/iudanet/divelog/pkg/api"
)

// TripsHandler отдает снимок поездок текущего пользователя
type TripsHandler struct {
	logger    *slog.Logger
	snapshots storage.SnapshotStorage
}

// NewTripsHandler создает новый handler поездок
func NewTripsHandler(logger *slog.Logger, snapshots storage.SnapshotStorage) *TripsHandler {
	return &TripsHandler{
		logger:    logger,
		snapshots: snapshots,
	}
}

// List обрабатывает GET /api/v1/trips. Требует AuthMiddleware.
func (h *TripsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := GetUser(ctx)
	if !ok {
		sendError(h.logger, w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	snapshot, err := h.snapshots.GetSnapshot(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			sendError(h.logger, w, http.StatusNotFound, "no trips", "")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get trips snapshot", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	sendJSON(h.logger, w, api.TripsResponse{FetchedAt: snapshot.FetchedAt, Trips: snapshot.Trips}, http.StatusOK)
}
