package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/pkg/clientip"
	"github.com/dmitrymomot/signupkit/pkg/logger"
)

// KeyFunc picks the bucket for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByClientIP keys on the address stored by clientip.Middleware.
func ByClientIP(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

type middlewareConfig struct {
	logger *slog.Logger
	now    func() time.Time
}

type MiddlewareOption func(*middlewareConfig)

func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware limits requests per key and sets the X-RateLimit-* headers.
// Store failures are answered with 500.
func Middleware(limiter *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{logger: logger.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := limiter.Allow(r.Context(), k)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "rate limit check failed", logger.Error(err))
				_ = handler.JSONError(err).Render(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				retry := res.RetryAfter(cfg.now())
				w.Header().Set("Retry-After", strconv.Itoa(max(1, int(retry.Round(time.Second).Seconds()))))
				cfg.logger.WarnContext(r.Context(), "rate limit exceeded",
					slog.String("key", k),
					slog.String("path", r.URL.Path),
				)
				_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
