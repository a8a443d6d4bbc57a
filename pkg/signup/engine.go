package signup

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/signupkit/pkg/country"
	"github.com/dmitrymomot/signupkit/pkg/validator"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 50
	usernameMinLen = 4
	usernameMaxLen = 20
	aadharLen      = 12
)

// Engine maps a field, a candidate value and the form snapshot to an Outcome.
// It holds only immutable configuration and is safe for concurrent use.
type Engine struct {
	dir    *country.Directory
	policy PasswordPolicy
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPasswordPolicy selects the password rule set. Unknown policies fall back to strict.
func WithPasswordPolicy(p PasswordPolicy) Option {
	return func(e *Engine) {
		if p == PasswordLegacy {
			e.policy = PasswordLegacy
			return
		}
		e.policy = PasswordStrict
	}
}

// WithLogger sets the logger used for rejected calls.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine builds an engine over the given country directory.
func NewEngine(dir *country.Directory, opts ...Option) (*Engine, error) {
	if dir == nil {
		return nil, ErrNilDirectory
	}

	e := &Engine{
		dir:    dir,
		policy: PasswordStrict,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Directory returns the country data the engine validates against.
func (e *Engine) Directory() *country.Directory {
	return e.dir
}

// Policy returns the active password policy.
func (e *Engine) Policy() PasswordPolicy {
	return e.policy
}

// Validate checks candidate as the value of field. Cross-field lookups
// (phone length, city list) read the other values from snap; snap's own value
// for field is ignored.
//
// An error is returned only for fields that are not validated, including
// showPassword. Validation failures are reported through the Outcome.
func (e *Engine) Validate(field Field, candidate string, snap Snapshot) (Outcome, error) {
	if !field.Validated() {
		e.logger.Debug("rejected validation of unknown field", slog.String("field", string(field)))
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return e.validate(field, candidate, snap), nil
}

// validate assumes field is one of the validated fields.
func (e *Engine) validate(field Field, value string, snap Snapshot) Outcome {
	name := string(field)

	required := validator.Required(name, value).
		WithMessage("This field is required", "signup.required")
	if verr, failed := validator.First(required); failed {
		return failedOutcome(field, Required, verr)
	}

	if verr, failed := validator.First(e.rules(field, value, snap)...); failed {
		return failedOutcome(field, FormatInvalid, verr)
	}
	return validOutcome(field)
}

// rules returns the ordered format rules of a field. The first failing rule wins.
func (e *Engine) rules(field Field, value string, snap Snapshot) []validator.Rule {
	name := string(field)

	switch field {
	case FirstName, LastName:
		return []validator.Rule{
			validator.LenBetween(name, value, nameMinLen, nameMaxLen).
				WithMessage("Name must be between 2 and 50 characters", "signup.name.length"),
			validator.ValidAlphaSpace(name, value).
				WithMessage("Name must contain only letters and spaces", "signup.name.charset"),
		}

	case Username:
		return []validator.Rule{
			validator.LenBetween(name, value, usernameMinLen, usernameMaxLen).
				WithMessage("Username must be 4-20 characters long", "signup.username.length"),
			validator.ValidWordChars(name, value).
				WithMessage("Username can only include letters, numbers, and underscores", "signup.username.charset"),
		}

	case Email:
		return []validator.Rule{
			validator.ValidEmail(name, value).
				WithMessage("Please enter a valid email (e.g., user@example.com)", "signup.email.format"),
		}

	case Password:
		return e.passwordRules(name, value)

	case Phone:
		return e.phoneRules(name, value, snap.CountryCode)

	case Country:
		return []validator.Rule{
			validator.OneOf(name, value, e.dir.Names()).
				WithMessage("Please select a valid country", "signup.country.unknown"),
		}

	case City:
		return e.cityRules(name, value, snap.Country)

	case PAN:
		return []validator.Rule{
			validator.ValidPAN(name, value).
				WithMessage("PAN must be in format: 5 uppercase letters, 4 digits, 1 uppercase letter (e.g., ABCDE1234F)", "signup.pan.format"),
		}

	case Aadhar:
		return []validator.Rule{
			validator.ValidNumericString(name, value).
				WithMessage("Aadhar number must contain only digits", "signup.aadhar.digits"),
			validator.Len(name, value, aadharLen).
				WithMessage("Aadhar number must be exactly 12 digits", "signup.aadhar.length"),
		}

	default:
		// countryCode is only required.
		return nil
	}
}

func (e *Engine) passwordRules(name, value string) []validator.Rule {
	rules := []validator.Rule{
		validator.MinLen(name, value, minPasswordLength).
			WithMessage("Password must be at least 8 characters long", "signup.password.length"),
	}
	if e.policy == PasswordLegacy {
		return rules
	}
	return append(rules,
		validator.ContainsUppercase(name, value).
			WithMessage("Password must include at least one uppercase letter", "signup.password.uppercase"),
		validator.ContainsLowercase(name, value).
			WithMessage("Password must include at least one lowercase letter", "signup.password.lowercase"),
		validator.ContainsDigit(name, value).
			WithMessage("Password must include at least one number", "signup.password.digit"),
		validator.ContainsAnyOf(name, value, passwordSymbols).
			WithMessage("Password must include at least one special character (@#$%^&+=!)", "signup.password.symbol"),
	)
}

func (e *Engine) phoneRules(name, value, code string) []validator.Rule {
	rec, found := e.dir.FindByCallingCode(code)

	return []validator.Rule{
		validator.ValidNumericString(name, value).
			WithMessage("Phone number must contain only digits", "signup.phone.digits"),
		{
			Check: func() bool { return found },
			Error: validator.ValidationError{
				Field:          name,
				Message:        "Please select a country code first",
				TranslationKey: "signup.phone.country_code",
			},
		},
		validator.Len(name, value, rec.NationalNumberLength).
			WithMessage("Phone number must be exactly "+strconv.Itoa(rec.NationalNumberLength)+" digits", "signup.phone.length").
			WithValues(map[string]any{"country": rec.Name}),
	}
}

func (e *Engine) cityRules(name, value, countryName string) []validator.Rule {
	rec, found := e.dir.FindByName(countryName)

	return []validator.Rule{
		{
			Check: func() bool { return found },
			Error: validator.ValidationError{
				Field:          name,
				Message:        "Please select a country first",
				TranslationKey: "signup.city.country",
			},
		},
		{
			Check: func() bool { return rec.HasCity(value) },
			Error: validator.ValidationError{
				Field:             name,
				Message:           "Please select a city in " + rec.Name,
				TranslationKey:    "signup.city.unknown",
				TranslationValues: map[string]any{"field": name, "country": rec.Name},
			},
		},
	}
}
