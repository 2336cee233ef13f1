package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// SessionIDKey ключ для хранения id сессии в контексте
	SessionIDKey contextKey = "session_id"
	// UserKey ключ для хранения логина облака в контексте
	UserKey contextKey = "user"
)

// GetSessionID извлекает id сессии из контекста запроса
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDKey).(string)
	return id, ok
}

// GetUser извлекает логин облака из контекста запроса
func GetUser(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(UserKey).(string)
	return user, ok
}

// WithSession returns ctx carrying the session id and user
func WithSession(ctx context.Context, sessionID, user string) context.Context {
	ctx = context.WithValue(ctx, SessionIDKey, sessionID)
	return context.WithValue(ctx, UserKey, user)
}
