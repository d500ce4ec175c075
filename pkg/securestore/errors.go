package securestore

import "errors"

var (
	ErrEmptyKey       = errors.New("securestore: empty key")
	ErrSerialize      = errors.New("securestore: failed to serialize value")
	ErrEncode         = errors.New("securestore: failed to encode value")
	ErrDecode         = errors.New("securestore: failed to decode value")
	ErrDeserialize    = errors.New("securestore: failed to deserialize value")
	ErrBackend        = errors.New("securestore: backend operation failed")
	ErrIncompleteKeys = errors.New("securestore: both app and scope keys are required for sealing")
	ErrInvalidKeys    = errors.New("securestore: invalid sealing key")
)
