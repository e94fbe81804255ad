package jwtx

import "errors"

var (
	// ErrMissing reports that no token was supplied at all.
	ErrMissing = errors.New("jwtx: token missing")

	// ErrInvalid reports a malformed token, an unexpected signing method
	// or a bad signature. Callers should treat all of these uniformly.
	ErrInvalid = errors.New("jwtx: token invalid")

	// ErrExpired reports a token outside its validity window.
	ErrExpired = errors.New("jwtx: token expired")
)
