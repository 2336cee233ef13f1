package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/divelog/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, statusCode int, errText, message string) {
	sendJSON(logger, w, api.ErrorResponse{Error: errText, Message: message}, statusCode)
}
