package middleware

import "net/http"

// RequestObserver учитывает обработанные запросы
type RequestObserver interface {
	ObserveRequest(method, route string, code int)
}

// MetricsMiddleware передает в observer метод, шаблон маршрута и статус ответа.
// Шаблон (r.Pattern) заполняет ServeMux, поэтому middleware должен оборачивать mux
// и не подменять запрос.
func MetricsMiddleware(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r)
			observer.ObserveRequest(r.Method, r.Pattern, wrapped.statusCode)
		})
	}
}
