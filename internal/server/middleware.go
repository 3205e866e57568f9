package server

import (
	"net/http"

	"github.com/lexiqai/tts-server/internal/observability"
)

// withRequestID attaches a request ID to every request: echoed in the
// X-Request-ID response header and carried by the request-scoped logger in
// the context. Inbound IDs are honored so callers can correlate.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = observability.NewRequestID()
		}
		w.Header().Set("X-Request-ID", requestID)

		logger := observability.WithRequestID(requestID)
		ctx := logger.WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
