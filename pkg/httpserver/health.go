package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/signupkit/pkg/logger"
)

// Check reports whether a dependency is ready.
type Check func(ctx context.Context) error

// HealthHandler answers "ALIVE" when no checks are given. Otherwise it runs
// every check with the request context and answers "READY", or 503 with
// "NOT_READY" on the first failure.
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.WarnContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
