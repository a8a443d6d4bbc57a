package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/signupkit/handler"
)

// DefaultMaxJSONSize is the maximum accepted JSON body (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON returns a strict JSON body binder.
func JSON() handler.Bind {
	return JSONWithLimit(DefaultMaxJSONSize)
}

// JSONWithLimit is JSON with a custom body size limit in bytes.
func JSONWithLimit(limit int64) handler.Bind {
	if limit <= 0 {
		limit = DefaultMaxJSONSize
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fail(ErrFailedToParseJSON, handler.ErrBadRequest, err.Error())
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fail(ErrMissingContentType, handler.ErrUnsupportedMediaType, "expected application/json")
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fail(ErrUnsupportedMediaType, handler.ErrUnsupportedMediaType,
				fmt.Sprintf("got %q, expected application/json", contentType))
		}

		if r.Body == nil {
			return fail(ErrFailedToParseJSON, handler.ErrBadRequest, "empty body")
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
		if err != nil {
			return fail(ErrFailedToParseJSON, handler.ErrBadRequest, err.Error())
		}
		if int64(len(body)) > limit {
			return fail(ErrBodyTooLarge, handler.ErrRequestTooLarge, fmt.Sprintf("max %d bytes", limit))
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fail(ErrFailedToParseJSON, handler.ErrBadRequest, "empty body")
			}
			return fail(ErrFailedToParseJSON, handler.ErrBadRequest, err.Error())
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fail(ErrFailedToParseJSON, handler.ErrBadRequest, "unexpected data after JSON value")
		}

		return nil
	}
}

func fail(sentinel error, status handler.HTTPError, detail string) error {
	return fmt.Errorf("%w: %w", sentinel, status.WithMessage(sentinel.Error()+": "+detail))
}
