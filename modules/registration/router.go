package registration

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the services to mount. Nil services are skipped.
type RouterOptions struct {
	Signup Mountable
}

// Router mounts the configured services:
//
//	r.Mount("/api", registration.Router(registration.RouterOptions{Signup: svc}))
//
// serves the sign-up endpoints under /api/signup.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Signup != nil {
		r.Mount("/signup", opts.Signup.Handle())
	}

	return r
}
