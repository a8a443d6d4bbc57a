package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records a list of form field names, typically the failing ones.
func Fields[T ~string](names []T) slog.Attr {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return slog.Any("fields", out)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
