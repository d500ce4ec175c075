// Package token generates opaque random tokens and checks the structural
// shape of JWTs.
//
// Tokens are strings of a fixed length drawn from the 62-symbol alphanumeric
// Alphabet. The default RandomSource is crypto/rand, which is required for
// session identifiers and anything else used for authentication. MathSource
// exists for reproducible, non-security identifiers only.
//
//	sid, err := token.Generate(32)
//	if err != nil {
//	    // the system random source failed
//	}
//
//	gen := token.NewGenerator(token.WithLength(16))
//	code, _ := gen.Generate(0) // 16 characters
//
// IsValidJWT only proves that a string looks like header.payload.signature
// with base64 segments. It does not verify signatures or claims; use a JWT
// library with the issuer's key for that.
//
//	if !token.IsValidJWT(bearer) {
//	    // reject before calling the auth service
//	}
package token
