package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"routine-advisor/internal/contextutil"
)

// CORS attaches cross-origin headers allowing the given methods to every
// response, and answers preflight requests with the headers and no body.
// The proxy endpoints use the strict "POST, OPTIONS" form; browser-facing
// helper endpoints allow their own verbs.
func CORS(allowMethods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger assigns each request an ID and puts a request-scoped
// structured logger into the context for downstream layers.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		logger := slog.Default().With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		w.Header().Set("X-Request-ID", requestID)
		ctx := contextutil.WithLogger(r.Context(), logger)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		logger.InfoContext(ctx, "request completed", "duration_ms", time.Since(start).Milliseconds())
	})
}
