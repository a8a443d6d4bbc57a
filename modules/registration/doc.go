// Package registration exposes the sign-up engine over HTTP.
//
// The Service is mounted under a chi router and speaks the handler package's
// JSON envelope. Clients send whole snapshots: the server keeps no form state,
// so every call is a pure function of the request body and the country
// directory.
//
//	svc, err := registration.NewService(engine,
//		registration.WithTranslator(tr),
//		registration.WithLogger(log),
//	)
//	r.Mount("/api", registration.Router(registration.RouterOptions{Signup: svc}))
//
// Messages are rendered in the language stored by i18n.Middleware.
package registration
