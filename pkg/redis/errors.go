package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned by Connect when REDIS_URL is empty.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	// ErrInvalidConnectionURL wraps the parse error of a malformed REDIS_URL.
	ErrInvalidConnectionURL = errors.New("redis: invalid connection URL")
	// ErrRedisNotReady means no ping succeeded within the retry budget.
	ErrRedisNotReady     = errors.New("redis: server did not become ready")
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
	// ErrBackend wraps command failures of the securestore Backend.
	ErrBackend = errors.New("redis: backend command failed")
)
