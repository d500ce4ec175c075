// Package secrets provides authenticated encryption for values that need
// real confidentiality at rest.
//
// A 32-byte app key and a 32-byte scope key (for example one per tenant or
// per device) are combined with HKDF-SHA256 into an AES-256-GCM key. Sealed
// output carries its random nonce, so it is self-contained:
//
//	appKey, _ := secrets.GenerateKey()
//	scopeKey, _ := secrets.GenerateKey()
//
//	s, err := secrets.NewSealer(appKey, scopeKey)
//	if err != nil {
//	    // keys have the wrong size
//	}
//	sealed, _ := s.Seal([]byte("card-token"))
//	plain, err := s.Open(sealed) // fails if sealed was tampered with
//
// securestore.SealedCodec builds on this package; it is the drop-in
// replacement for the default reversible encoding when stored values must
// not be readable from the backing store.
package secrets
