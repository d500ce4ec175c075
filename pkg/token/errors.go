package token

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token format")
	ErrInvalidSegment = errors.New("token segment is not valid base64")
	ErrRandomSource   = errors.New("random source failed")
)
