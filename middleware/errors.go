package middleware

import "errors"

var (
	errMissingToken   = errors.New("Missing token")
	errBadTokenFormat = errors.New("Invalid token format")
	errInvalidToken   = errors.New("Invalid token")
)
