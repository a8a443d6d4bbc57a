// Package binder decodes HTTP request bodies into handler request types.
//
// JSON is strict: the Content-Type must be application/json, the body is
// capped at DefaultMaxJSONSize, unknown fields are rejected, and nothing may
// follow the first JSON value. Strings are stored exactly as sent.
//
//	r.Post("/validate", handler.Wrap(validate,
//		handler.WithBinders[validateRequest](binder.JSON()),
//	))
//
// Every error wraps one of the package sentinels and a handler.HTTPError
// carrying the response status, so error handlers can use either errors.Is
// or errors.As.
package binder
