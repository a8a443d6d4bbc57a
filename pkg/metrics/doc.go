// Package metrics exposes Prometheus collectors for the sign-up service.
//
// HTTP metrics are labelled with the chi route pattern rather than the raw
// path, so /countries/{name}/cities is one series however many countries are
// requested. Domain metrics count validation outcomes by field and kind and
// submissions by result.
//
//	m, err := metrics.New("signup")
//	r.Use(m.Middleware)
//	r.Handle("/metrics", m.Handler())
//
// Pass WithRegisterer(prometheus.NewRegistry()) to keep collectors out of the
// global registry, which tests need.
package metrics
