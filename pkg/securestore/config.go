package securestore

// Config holds store settings loadable from the environment.
type Config struct {
	// Encode is the default for calls that pass neither Encoded nor Plain.
	Encode bool `env:"SECURESTORE_ENCODE" envDefault:"true"`
	// LRUCapacity bounds the in-process backend; 0 means unbounded.
	LRUCapacity int `env:"SECURESTORE_LRU_CAPACITY" envDefault:"0"`
	// AppKey and ScopeKey are base64 32-byte keys. When both are set values
	// are sealed with AES-256-GCM instead of merely encoded.
	AppKey   string `env:"SECURESTORE_APP_KEY"`
	ScopeKey string `env:"SECURESTORE_SCOPE_KEY"`
}

// NewFromConfig builds a Store from cfg. A nil backend selects an in-process
// backend sized by cfg.LRUCapacity.
func NewFromConfig(cfg Config, backend Backend, opts ...Option) (*Store, error) {
	codec, err := CodecFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	if backend == nil {
		if cfg.LRUCapacity > 0 {
			backend = NewLRUBackend(cfg.LRUCapacity)
		} else {
			backend = NewMemoryBackend()
		}
	}

	base := []Option{WithCodec(codec), WithEncodeByDefault(cfg.Encode)}
	return New(backend, append(base, opts...)...), nil
}
