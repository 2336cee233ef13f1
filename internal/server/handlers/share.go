package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/profile"
	"github.com/iudanet/divelog/internal/server/metrics"
	"github.com/iudanet/divelog/internal/share"
	"github.com/iudanet/divelog/pkg/api"
)

// MaxShareBody ограничивает размер тела POST /api/v1/share
const MaxShareBody = 4 << 20

// ShareObserver получает результат каждой операции с токеном
type ShareObserver interface {
	ObserveShare(operation string, err error)
}

// ShareHandler кодирует погружения в токены и обратно
type ShareHandler struct {
	logger   *slog.Logger
	observer ShareObserver
	baseURL  string
}

// NewShareHandler создает handler. observer может быть nil.
func NewShareHandler(logger *slog.Logger, observer ShareObserver, baseURL string) *ShareHandler {
	return &ShareHandler{
		logger:   logger,
		observer: observer,
		baseURL:  baseURL,
	}
}

func (h *ShareHandler) observe(operation string, err error) {
	if h.observer != nil {
		h.observer.ObserveShare(operation, err)
	}
}

// Create обрабатывает POST /api/v1/share
// Тело запроса - JSON погружения; все поля, включая неизвестные, попадают в токен
func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxShareBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			sendError(h.logger, w, http.StatusRequestEntityTooLarge, "request too large", "")
			return
		}
		h.logger.WarnContext(ctx, "failed to read share request", slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		sendError(h.logger, w, http.StatusBadRequest, "invalid dive", "dive must be a JSON object")
		return
	}
	var dive models.Dive
	if err := json.Unmarshal(trimmed, &dive); err != nil {
		h.logger.WarnContext(ctx, "invalid dive in share request", slog.Any("error", err))
		sendError(h.logger, w, http.StatusBadRequest, "invalid dive", err.Error())
		return
	}

	token, err := share.Encode(json.RawMessage(trimmed))
	h.observe(metrics.OperationEncode, err)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to encode dive", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	link, err := share.URL(h.baseURL, token)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build share URL", slog.Any("error", err))
		sendError(h.logger, w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	h.logger.InfoContext(ctx, "dive shared",
		slog.Int("number", dive.Number),
		slog.Int("token_len", len(token)))

	sendJSON(h.logger, w, api.ShareResponse{Token: token, URL: link}, http.StatusCreated)
}

// Get обрабатывает GET /api/v1/share/{token}
// Возвращает JSON погружения в том виде, в каком он был закодирован
func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	dive, ok := h.decode(w, r, r.PathValue("token"))
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(dive.Raw); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write dive", slog.Any("error", err))
	}
}

// Profile обрабатывает GET /api/v1/share/{token}/profile
func (h *ShareHandler) Profile(w http.ResponseWriter, r *http.Request) {
	dive, ok := h.decode(w, r, r.PathValue("token"))
	if !ok {
		return
	}

	resp := api.ProfileResponse{
		Number:  dive.Number,
		Date:    dive.Date,
		Profile: profile.Build(dive),
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// decode декодирует токен и при ошибке сам отправляет ответ.
// Распакованный JSON не может быть больше MaxShareBody: такой токен не выдал бы Create.
func (h *ShareHandler) decode(w http.ResponseWriter, r *http.Request, token string) (*models.Dive, bool) {
	dive, err := share.DecodeLimit(token, MaxShareBody)
	h.observe(metrics.OperationDecode, err)
	if err != nil {
		h.sendDecodeError(w, r, err)
		return nil, false
	}
	return dive, true
}

// sendDecodeError отвечает 400 на чужие ссылки и 422 на поврежденные
func (h *ShareHandler) sendDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := share.Kind(err)
	h.logger.WarnContext(r.Context(), "failed to decode share token",
		slog.String("kind", kind),
		slog.Any("error", err))

	statusCode := http.StatusUnprocessableEntity
	if share.IsForeignLink(err) {
		statusCode = http.StatusBadRequest
	}
	sendError(h.logger, w, statusCode, kind, err.Error())
}
