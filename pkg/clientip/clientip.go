package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/dmitrymomot/signupkit/pkg/logger"
)

// ProxyHeaders is the usual order for a service behind Cloudflare or a
// standard reverse proxy. Pass it to WithHeaders to opt in.
var ProxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Config is the environment form of the trusted header list. Empty means
// only RemoteAddr is used.
type Config struct {
	TrustedHeaders []string `env:"CLIENTIP_TRUSTED_HEADERS" envSeparator:","`
}

// Resolver extracts client addresses from requests.
type Resolver struct {
	headers []string
}

type Option func(*Resolver)

// WithHeaders replaces the trusted header list. No arguments means only
// RemoteAddr is used.
func WithHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = headers
	}
}

// New returns a resolver that trusts no headers unless WithHeaders says so.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig trusts the configured headers, in order, before opts.
func NewFromConfig(cfg Config, opts ...Option) *Resolver {
	headers := make([]string, 0, len(cfg.TrustedHeaders))
	for _, h := range cfg.TrustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, h)
		}
	}
	return New(append([]Option{WithHeaders(headers...)}, opts...)...)
}

// IP returns the normalized client address, or "" when none is valid.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the resolved address in the request context.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	if res == nil {
		res = New()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
		})
	}
}

// LoggerExtractor adds client_ip to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip := FromContext(ctx)
		if ip == "" {
			return slog.Attr{}, false
		}
		return slog.String("client_ip", ip), true
	}
}
