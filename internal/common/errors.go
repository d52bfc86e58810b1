// Package common defines the sentinel errors shared by the store, the
// hasher and the menu controller. Callers should use errors.Is to match
// these values; the presentation layer picks the user-facing text from
// the kind, never from the error string.
package common

import (
	"errors"
	"fmt"
)

var (
	// Input errors.
	ErrInputFormat = errors.New("invalid menu selector")

	// Authentication errors. Both refinements wrap ErrAuthentication.
	ErrAuthentication     = errors.New("authentication failed")
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	ErrUserExists         = fmt.Errorf("%w: user already exists", ErrAuthentication)

	// Storage errors.
	ErrPersistence = errors.New("persistence error")

	// Hashing errors (fatal at startup).
	ErrHashUnavailable = errors.New("hash algorithm unavailable")
)
