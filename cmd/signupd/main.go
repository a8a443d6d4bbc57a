// Command signupd serves the sign-up validation API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signupkit/modules/registration"
	"github.com/dmitrymomot/signupkit/pkg/clientip"
	"github.com/dmitrymomot/signupkit/pkg/config"
	"github.com/dmitrymomot/signupkit/pkg/httpserver"
	"github.com/dmitrymomot/signupkit/pkg/i18n"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/metrics"
	"github.com/dmitrymomot/signupkit/pkg/ratelimiter"
	"github.com/dmitrymomot/signupkit/pkg/requestid"
	"github.com/dmitrymomot/signupkit/pkg/signup"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Service         string `env:"SERVICE_NAME" envDefault:"signupd"`
	LogLevel        string `env:"LOG_LEVEL"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	MetricsEnabled  bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("signupd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg    appConfig
		signupCfg signup.Config
		httpCfg   httpserver.Config
		limitCfg  ratelimiter.Config
		ipCfg     clientip.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&signupCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&limitCfg) },
		func() error { return config.Load(&ipCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Service),
		logger.WithLevelName(appCfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	slog.SetDefault(log)

	engine, err := signup.NewEngineFromConfig(ctx, signupCfg, log)
	if err != nil {
		return err
	}

	tr, err := signup.NewTranslator(ctx,
		i18n.WithDefaultLanguage(appCfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(appCfg.Env != logger.Production),
	)
	if err != nil {
		return err
	}

	svcOpts := []registration.Option{
		registration.WithTranslator(tr),
		registration.WithLogger(log),
		registration.WithDefaultCountryCode(signupCfg.DefaultCountryCode),
	}

	var m *metrics.Metrics
	if appCfg.MetricsEnabled {
		if m, err = metrics.New("signup"); err != nil {
			return err
		}
		svcOpts = append(svcOpts, registration.WithRecorder(m))
	}

	svc, err := registration.NewService(engine, svcOpts...)
	if err != nil {
		return err
	}

	var limiter *ratelimiter.Bucket
	if limitCfg.Enabled {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		if limiter, err = ratelimiter.NewBucket(store, limitCfg); err != nil {
			return err
		}
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if m != nil {
		r.Use(m.Middleware)
	}
	r.Use(clientip.Middleware(clientip.NewFromConfig(ipCfg)))
	r.Use(i18n.Middleware(i18n.NewLangExtractor(tr.Languages()), tr.DefaultLanguage()))
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	r.Get("/health", httpserver.HealthHandler(log))
	r.Get("/ready", httpserver.HealthHandler(log, func(context.Context) error {
		return ctx.Err()
	}))
	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, ratelimiter.WithLogger(log)))
		}
		r.Mount("/api", registration.Router(registration.RouterOptions{Signup: svc}))
	})

	log.InfoContext(ctx, "starting signupd",
		slog.String("addr", httpCfg.Addr),
		slog.String("password_policy", string(engine.Policy())),
		slog.Int("countries", engine.Directory().Len()),
	)

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
