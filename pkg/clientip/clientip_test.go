package clientip_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signupkit/pkg/clientip"
	"github.com/dmitrymomot/signupkit/pkg/logger"
)

func TestResolver_IP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr", nil, "203.0.113.7:5555", "203.0.113.7"},
		{"remote addr without port", nil, "203.0.113.7", "203.0.113.7"},
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Forwarded-For": "198.51.100.2"}, "10.0.0.1:80", "198.51.100.1"},
		{"first valid forwarded entry", map[string]string{"X-Forwarded-For": "garbage, 198.51.100.3, 10.0.0.2"}, "10.0.0.1:80", "198.51.100.3"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.1:80", "198.51.100.4"},
		{"invalid headers fall back", map[string]string{"CF-Connecting-IP": "nope", "X-Real-IP": "999.1.1.1"}, "10.0.0.1:80", "10.0.0.1"},
		{"ipv6 remote", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"ipv4-mapped ipv6", map[string]string{"X-Real-IP": "::ffff:192.0.2.9"}, "10.0.0.1:80", "192.0.2.9"},
		{"zone stripped", map[string]string{"X-Real-IP": "fe80::1%eth0"}, "10.0.0.1:80", "fe80::1"},
		{"nothing valid", nil, "not-an-address", ""},
	}

	res := clientip.New(clientip.WithHeaders(clientip.ProxyHeaders...))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, res.IP(r))
		})
	}
}

func TestNew_IgnoresForwardingHeaders(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:5555"
	for _, h := range clientip.ProxyHeaders {
		r.Header.Set(h, "198.51.100.1")
	}

	assert.Equal(t, "203.0.113.7", clientip.New().IP(r))
	assert.Equal(t, "203.0.113.7", clientip.New(clientip.WithHeaders()).IP(r))
	assert.Equal(t, "203.0.113.7", clientip.NewFromConfig(clientip.Config{}).IP(r))
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:80"
	r.Header.Set("CF-Connecting-IP", "198.51.100.1")
	r.Header.Set("X-Real-IP", "198.51.100.4")

	t.Run("only listed headers count", func(t *testing.T) {
		res := clientip.NewFromConfig(clientip.Config{TrustedHeaders: []string{"X-Real-IP"}})
		assert.Equal(t, "198.51.100.4", res.IP(r))
	})

	t.Run("order follows the list", func(t *testing.T) {
		res := clientip.NewFromConfig(clientip.Config{TrustedHeaders: []string{" X-Real-IP", "CF-Connecting-IP "}})
		assert.Equal(t, "198.51.100.4", res.IP(r))
	})

	t.Run("blank entries are dropped", func(t *testing.T) {
		res := clientip.NewFromConfig(clientip.Config{TrustedHeaders: []string{"", "  "}})
		assert.Equal(t, "10.0.0.1", res.IP(r))
	})

	t.Run("options override config", func(t *testing.T) {
		res := clientip.NewFromConfig(clientip.Config{TrustedHeaders: []string{"X-Real-IP"}}, clientip.WithHeaders())
		assert.Equal(t, "10.0.0.1", res.IP(r))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.9:4000"
	r.Header.Set("X-Real-IP", "198.51.100.4")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "203.0.113.9", got, "nil resolver trusts no headers")
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextExtractors(clientip.LoggerExtractor()))

	log.InfoContext(context.Background(), "no ip")
	assert.NotContains(t, buf.String(), "client_ip")

	log.InfoContext(clientip.WithContext(context.Background(), "192.0.2.1"), "with ip")
	assert.Contains(t, buf.String(), `"client_ip":"192.0.2.1"`)
}
