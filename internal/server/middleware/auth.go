package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/divelog/internal/server/handlers"
	"github.com/iudanet/divelog/internal/server/storage"
)

var (
	errMissingToken = errors.New("missing token")
	errTokenFormat  = errors.New("invalid token format")
)

// AuthMiddleware создает middleware для проверки JWT сессии.
// Кроме подписи токена проверяется, что сессия не отозвана и не истекла.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig, sessions storage.SessionStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := bearerToken(r)
			if err != nil {
				logger.WarnContext(ctx, "rejected request", slog.Any("error", err))
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := handlers.ValidateSessionToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(ctx, "invalid session token", slog.Any("error", err))
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			session, err := sessions.GetSession(ctx, claims.ID)
			switch {
			case errors.Is(err, storage.ErrSessionNotFound):
				logger.WarnContext(ctx, "session revoked", slog.String("session_id", claims.ID))
				writeError(w, http.StatusUnauthorized, "session revoked")
				return
			case err != nil:
				logger.ErrorContext(ctx, "failed to load session", slog.Any("error", err))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			// токен мог пережить сессию, если TTL на сервере уменьшили
			if session.User != claims.User || !session.ExpiresAt.After(time.Now()) {
				logger.WarnContext(ctx, "session expired", slog.String("session_id", claims.ID))
				writeError(w, http.StatusUnauthorized, "session expired")
				return
			}

			logger.DebugContext(ctx, "user authenticated",
				slog.String("user", claims.User),
				slog.String("session_id", claims.ID))

			next.ServeHTTP(w, r.WithContext(handlers.WithSession(ctx, claims.ID, claims.User)))
		})
	}
}

// bearerToken извлекает токен из заголовка "Authorization: Bearer <token>"
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errTokenFormat
	}
	return token, nil
}
