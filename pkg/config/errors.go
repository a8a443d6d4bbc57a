package config

import "errors"

var (
	// ErrParsingConfig wraps failures of the environment parser.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when Load receives a nil pointer.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when an explicit .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
