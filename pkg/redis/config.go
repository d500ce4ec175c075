package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL in the form "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is how many times Connect pings before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds the whole Connect call.
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"securekit:"`        // KeyPrefix namespaces every key written by Backend.
	TTL            time.Duration `env:"REDIS_TTL" envDefault:"0"`                        // TTL applied to written keys; 0 keeps them until removed.
}
