// Package handler turns typed functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request value filled by binders, and
// returns a Response that renders itself:
//
//	type validateRequest struct {
//		Field string `json:"field"`
//		Value string `json:"value"`
//	}
//
//	func validate(ctx handler.Context, req validateRequest) handler.Response {
//		if req.Field == "" {
//			return handler.JSONError(handler.ErrBadRequest)
//		}
//		return handler.JSON(result)
//	}
//
//	r.Post("/validate", handler.Wrap(validate,
//		handler.WithBinders[validateRequest](binder.JSON()),
//		handler.WithErrorHandler[validateRequest](handler.NewErrorHandler(log)),
//	))
//
// JSON responses share one envelope: {"data": ..., "meta": ..., "error": ...}.
// Errors are classified by type: HTTPError keeps its status, ValidationError
// maps to 422 with per-field details, and anything else is a 500.
package handler
