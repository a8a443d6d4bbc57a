package signup

import "errors"

var (
	// ErrUnknownField is returned for field names outside the form, and for
	// fields that exist but are never validated (showPassword).
	ErrUnknownField = errors.New("unknown form field")

	// ErrNilDirectory is returned when an engine is built without country data.
	ErrNilDirectory = errors.New("country directory is nil")

	// ErrNilEngine is returned when a form is built without an engine.
	ErrNilEngine = errors.New("validation engine is nil")

	// ErrUnknownCountryCode is returned when a pre-seeded calling code is not in the directory.
	ErrUnknownCountryCode = errors.New("unknown calling code")

	// ErrInvalidPasswordPolicy is returned for unrecognised policy names.
	ErrInvalidPasswordPolicy = errors.New("invalid password policy")
)
