package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/signupkit/pkg/logger"
)

// NewErrorHandler writes errors as JSON envelopes. Client errors are logged
// at WARN and server errors at ERROR. A nil logger disables logging.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		resp := JSONError(err).(*jsonResponse)

		level := slog.LevelError
		if resp.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Error(err),
			logger.Status(resp.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("handler"),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
