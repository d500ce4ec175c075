package config

import "errors"

var (
	// ErrParsingConfig wraps env parsing failures such as a missing required
	// variable or a value of the wrong type.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when Load receives a nil pointer.
	ErrNilPointer = errors.New("config: nil pointer")

	// ErrLoadingEnvFile wraps godotenv failures in LoadEnv.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
