// Package clientip resolves the address of the client behind reverse proxies.
//
// By default only the connection's RemoteAddr counts. Forwarding headers are
// trusted only when named, through WithHeaders or the CLIENTIP_TRUSTED_HEADERS
// variable; they are then consulted in order, the first valid address wins and
// RemoteAddr is the fallback. ProxyHeaders holds the usual order:
//
//	CF-Connecting-IP, X-Forwarded-For (first valid entry), X-Real-IP
//
// Only trust these headers when a proxy you control overwrites them.
//
//	r.Use(clientip.Middleware(clientip.NewFromConfig(cfg)))
//	ip := clientip.FromContext(r.Context())
package clientip
