package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrTokenRevoked indicates the presented pair is no longer the
	// last issued one and has been implicitly revoked.
	ErrTokenRevoked = errors.New("token revoked")
)
