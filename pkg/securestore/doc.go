// Package securestore wraps a string key-value Backend with JSON
// serialization and an encoding layer.
//
// By default values are written as base64(percent-escaped JSON), which is
// compatible with browser code that stores btoa(encodeURIComponent(json)).
// That encoding is obfuscation, not encryption: it prevents casual reading
// of values in a storage inspector and nothing more. Configure SealedCodec
// (or set SECURESTORE_APP_KEY and SECURESTORE_SCOPE_KEY) when values need
// confidentiality and tamper detection.
//
// Read failures never surface as errors. Get reports false and logs the
// cause, so a corrupted or foreign value behaves like a missing one:
//
//	store := securestore.New(nil, securestore.WithLogger(log))
//	_ = store.Set(ctx, "user", User{ID: 1})
//	u, ok := securestore.GetAs[User](ctx, store, "user")
//
// Backends provided here are MemoryBackend and LRUBackend. Package redis
// provides a shared one.
package securestore
