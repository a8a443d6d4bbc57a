package registration

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/pkg/binder"
	"github.com/dmitrymomot/signupkit/pkg/i18n"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/signup"
)

var (
	ErrUnknownField   = handler.NewHTTPError(http.StatusBadRequest, "unknown_field")
	ErrUnknownCountry = handler.NewHTTPError(http.StatusNotFound, "unknown_country")
)

// Recorder receives validation and submission events.
type Recorder interface {
	ObserveOutcome(field, kind string)
	ObserveSubmission(accepted bool)
}

type Service struct {
	engine             *signup.Engine
	translator         signup.Translator
	logger             *slog.Logger
	recorder           Recorder
	defaultCountryCode string
	errorHandler       handler.ErrorHandler
}

type Option func(*Service)

// WithTranslator localizes messages. Without it, English messages are sent.
func WithTranslator(t signup.Translator) Option {
	return func(s *Service) {
		s.translator = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder reports every outcome and submission to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithDefaultCountryCode pre-selects a calling code in GET /defaults.
func WithDefaultCountryCode(code string) Option {
	return func(s *Service) {
		s.defaultCountryCode = code
	}
}

// NewService fails with signup.ErrNilEngine for a nil engine and with
// signup.ErrUnknownCountryCode when the default code is not in the directory.
func NewService(engine *signup.Engine, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, signup.ErrNilEngine
	}

	s := &Service{
		engine: engine,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := signup.DefaultSnapshot(engine.Directory(), s.defaultCountryCode); err != nil {
		return nil, err
	}

	s.logger = s.logger.With(logger.Component("registration"))
	s.errorHandler = handler.NewErrorHandler(s.logger)
	return s, nil
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/countries", handler.Wrap(s.countries,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Get("/countries/{name}/cities", handler.Wrap(s.cities,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Get("/defaults", handler.Wrap(s.defaults,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[ValidateRequest](binder.JSON()),
		handler.WithErrorHandler[ValidateRequest](s.errorHandler),
		handler.WithDecorators(timed[ValidateRequest](s.logger, "validate")),
	))
	r.Post("/sweep", handler.Wrap(s.sweep,
		handler.WithBinders[SnapshotRequest](binder.JSON()),
		handler.WithErrorHandler[SnapshotRequest](s.errorHandler),
		handler.WithDecorators(timed[SnapshotRequest](s.logger, "sweep")),
	))
	r.Post("/submit", handler.Wrap(s.submit,
		handler.WithBinders[SnapshotRequest](binder.JSON()),
		handler.WithErrorHandler[SnapshotRequest](s.errorHandler),
		handler.WithDecorators(timed[SnapshotRequest](s.logger, "submit")),
	))

	return r
}

// ValidateRequest asks for the outcome of one field. Value is the candidate
// for Field; the other fields come from Snapshot.
type ValidateRequest struct {
	Field    string          `json:"field"`
	Value    string          `json:"value"`
	Snapshot signup.Snapshot `json:"snapshot"`
}

type ValidateResponse struct {
	Field   signup.Field `json:"field"`
	Valid   bool         `json:"valid"`
	Kind    signup.Kind  `json:"kind"`
	Message string       `json:"message"`
}

type SnapshotRequest struct {
	Snapshot signup.Snapshot `json:"snapshot"`
}

type SweepResponse struct {
	Errors    signup.Result `json:"errors"`
	CanSubmit bool          `json:"canSubmit"`
}

type SubmitResponse struct {
	Summary []signup.Entry `json:"summary"`
}

type CitiesResponse struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities"`
}

type DefaultsResponse struct {
	Snapshot signup.Snapshot `json:"snapshot"`
	Policy   string          `json:"passwordPolicy"`
}

func (s *Service) countries(_ handler.Context, _ struct{}) handler.Response {
	records := s.engine.Directory().Records()
	return handler.JSON(records, handler.WithJSONMeta(map[string]any{"count": len(records)}))
}

func (s *Service) cities(ctx handler.Context, _ struct{}) handler.Response {
	name := chi.URLParam(ctx.Request(), "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	rec, ok := s.engine.Directory().FindByName(name)
	if !ok {
		return handler.JSONError(ErrUnknownCountry.WithMessage("no country named " + name))
	}
	return handler.JSON(CitiesResponse{Country: rec.Name, Cities: rec.Cities})
}

func (s *Service) defaults(_ handler.Context, _ struct{}) handler.Response {
	snap, err := signup.DefaultSnapshot(s.engine.Directory(), s.defaultCountryCode)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(DefaultsResponse{Snapshot: snap, Policy: string(s.engine.Policy())})
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	field, err := signup.ParseField(req.Field)
	if err == nil && !field.Validated() {
		err = signup.ErrUnknownField
	}
	if err != nil {
		return handler.JSONError(ErrUnknownField.WithMessage("cannot validate " + req.Field))
	}

	out, err := s.engine.Validate(field, req.Value, req.Snapshot)
	if err != nil {
		return handler.JSONError(errors.Join(err, ErrUnknownField))
	}

	s.observe(out)

	return handler.JSON(ValidateResponse{
		Field:   out.Field,
		Valid:   out.IsValid(),
		Kind:    out.Kind,
		Message: signup.Localize(s.translator, i18n.GetLocale(ctx), out),
	})
}

func (s *Service) sweep(ctx handler.Context, req SnapshotRequest) handler.Response {
	outcomes := s.engine.SweepOutcomes(req.Snapshot)
	for _, out := range outcomes {
		s.observe(out)
	}

	errs := signup.LocalizeResult(s.translator, i18n.GetLocale(ctx), outcomes)
	return handler.JSON(SweepResponse{
		Errors:    errs,
		CanSubmit: s.engine.Gate(req.Snapshot),
	})
}

func (s *Service) submit(ctx handler.Context, req SnapshotRequest) handler.Response {
	accepted := s.engine.Gate(req.Snapshot)
	if s.recorder != nil {
		s.recorder.ObserveSubmission(accepted)
	}
	if accepted {
		return handler.JSON(SubmitResponse{Summary: signup.Summarize(req.Snapshot)})
	}

	errs := signup.LocalizeResult(s.translator, i18n.GetLocale(ctx), s.engine.SweepOutcomes(req.Snapshot))
	failed := errs.Failed()
	s.logger.InfoContext(ctx, "submission rejected", logger.Fields(failed))

	verr := make(handler.ValidationError, len(failed))
	for _, f := range failed {
		verr[string(f)] = errs[f]
	}
	return handler.JSONError(verr)
}

func (s *Service) observe(out signup.Outcome) {
	if s.recorder != nil {
		s.recorder.ObserveOutcome(string(out.Field), out.Kind.String())
	}
}

// timed logs the duration of each call at DEBUG.
func timed[R any](log *slog.Logger, op string) handler.Decorator[R] {
	return func(next handler.HandlerFunc[R]) handler.HandlerFunc[R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "request handled",
				slog.String("op", op),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
