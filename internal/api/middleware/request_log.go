package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

const requestIDHeader = "X-Request-ID"

// RequestLog логирует каждый запрос с идентификатором и латентностью.
// Идентификатор берется из заголовка X-Request-ID или генерируется,
// и возвращается клиенту в том же заголовке.
func RequestLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(requestIDHeader, requestID)

			next.ServeHTTP(w, r)

			log.Info("type: access, method: %s, url: %s, requestID: %s, latency: %s",
				r.Method, r.URL.Path, requestID, time.Since(start))
		})
	}
}
