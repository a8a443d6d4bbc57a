package signup

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/signupkit/pkg/country"
)

// Config holds environment-driven engine settings.
type Config struct {
	PasswordPolicy     string `env:"SIGNUP_PASSWORD_POLICY" envDefault:"strict"`
	DefaultCountryCode string `env:"SIGNUP_DEFAULT_COUNTRY_CODE"`
	// CountriesFile replaces the bundled dataset when set (.json, .yaml or .yml).
	CountriesFile string `env:"SIGNUP_COUNTRIES_FILE"`
}

// CountrySource returns the dataset source selected by the config.
func (c Config) CountrySource() country.Source {
	if c.CountriesFile != "" {
		return country.NewFileSource(c.CountriesFile)
	}
	return country.Embedded()
}

// NewEngineFromConfig loads the country directory and builds an engine.
// The default calling code, when set, must exist in the loaded dataset.
func NewEngineFromConfig(ctx context.Context, cfg Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	policy, err := ParsePasswordPolicy(cfg.PasswordPolicy)
	if err != nil {
		return nil, err
	}

	dir, err := country.New(ctx, cfg.CountrySource(), country.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if _, err := DefaultSnapshot(dir, cfg.DefaultCountryCode); err != nil {
		return nil, err
	}

	return NewEngine(dir, WithPasswordPolicy(policy), WithLogger(logger))
}
