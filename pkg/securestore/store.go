package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/lloms/securekit/pkg/logger"
)

// Store serializes values to JSON and encodes them on the way into a
// Backend, reversing both steps on the way out.
//
// Store adds no locking of its own: concurrent writes to the same key are
// last-write-wins and there is no read-modify-write guarantee.
type Store struct {
	backend Backend
	codec   Codec
	encode  bool
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithCodec replaces the default EncodingCodec. Nil is ignored.
func WithCodec(c Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithEncodeByDefault sets whether calls without a CallOption encode.
func WithEncodeByDefault(encode bool) Option {
	return func(s *Store) { s.encode = encode }
}

// WithLogger sets the logger that receives failures. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New wraps backend. A nil backend is replaced with a MemoryBackend.
// Values are encoded with EncodingCodec unless WithCodec says otherwise.
func New(backend Backend, opts ...Option) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	s := &Store{
		backend: backend,
		codec:   EncodingCodec{},
		encode:  true,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type callOptions struct {
	encode bool
}

// CallOption adjusts a single Set or Get call.
type CallOption func(*callOptions)

// Plain stores or reads the serialized value as-is.
func Plain() CallOption {
	return func(o *callOptions) { o.encode = false }
}

// Encoded forces the codec for this call.
func Encoded() CallOption {
	return func(o *callOptions) { o.encode = true }
}

func (s *Store) callOpts(opts []CallOption) callOptions {
	o := callOptions{encode: s.encode}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Set serializes value to JSON, encodes it unless Plain is given and writes
// it under key. Failures are logged and returned; the backend is left
// untouched when serialization or encoding fails.
func (s *Store) Set(ctx context.Context, key string, value any, opts ...CallOption) error {
	if key == "" {
		return ErrEmptyKey
	}
	o := s.callOpts(opts)

	data, err := json.Marshal(value)
	if err != nil {
		return s.fail(ctx, "set", key, errors.Join(ErrSerialize, err))
	}

	text := string(data)
	if o.encode {
		if text, err = s.codec.Encode(data); err != nil {
			return s.fail(ctx, "set", key, errors.Join(ErrEncode, err))
		}
	}

	if err := s.backend.Set(ctx, key, text); err != nil {
		return s.fail(ctx, "set", key, errors.Join(ErrBackend, err))
	}
	return nil
}

// Get reads key, decodes it unless Plain is given and unmarshals the JSON
// into dst. It returns false when the key is missing or empty, or when any
// step fails; failures are logged, never returned. dst is unspecified after
// a false result.
func (s *Store) Get(ctx context.Context, key string, dst any, opts ...CallOption) bool {
	if key == "" {
		return false
	}
	o := s.callOpts(opts)

	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		_ = s.fail(ctx, "get", key, errors.Join(ErrBackend, err))
		return false
	}
	if !ok || raw == "" {
		return false
	}

	data := []byte(raw)
	if o.encode {
		if data, err = s.codec.Decode(raw); err != nil {
			logger.SecurityEvent(ctx, s.log, slog.LevelWarn, "securestore_decode_failed",
				logger.Component("securestore"),
				logger.Key(key),
				logger.Error(err),
			)
			return false
		}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		_ = s.fail(ctx, "get", key, errors.Join(ErrDeserialize, err))
		return false
	}
	return true
}

// GetAs is Get returning a fresh T. The zero T and false are returned when
// Get would return false.
func GetAs[T any](ctx context.Context, s *Store, key string, opts ...CallOption) (T, bool) {
	var v T
	if !s.Get(ctx, key, &v, opts...) {
		var zero T
		return zero, false
	}
	return v, true
}

// Remove deletes key from the backend. Missing keys are not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.backend.Delete(ctx, key); err != nil {
		return s.fail(ctx, "remove", key, errors.Join(ErrBackend, err))
	}
	return nil
}

func (s *Store) fail(ctx context.Context, op, key string, err error) error {
	s.log.LogAttrs(ctx, slog.LevelError, "securestore: "+op+" failed",
		logger.Component("securestore"),
		logger.Key(key),
		logger.Error(err),
	)
	return err
}
