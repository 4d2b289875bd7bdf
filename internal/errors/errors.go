package errors

import (
	"errors"
	"fmt"
)

// Common error types for the Mediaverse core
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStoreUnavailable   = errors.New("record store unavailable")
	ErrUserNotFound       = errors.New("user not found")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenDecode  = errors.New("token decode failed")

	// Session errors
	ErrSessionExpired = errors.New("session expired")
	ErrNoSession      = errors.New("no session")

	// General errors
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("duplicate entry")
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
