// Package shared defines sentinel errors and small utility helpers used
// across the FileVault server and CLI. Callers should use errors.Is to
// match these values.
package shared

import "errors"

var (

	// repository-level errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// auth-specific errors
	ErrorInvalidToken         = errors.New("invalid token")
	ErrorUnauthorized         = errors.New("unauthorized")
	ErrorInvalidLoginPassword = errors.New("invalid login/password")
	ErrorLoginAlreadyExists   = errors.New("login already exists")

	// generic internal flow control
	ErrorInternal = errors.New("internal error")
)
