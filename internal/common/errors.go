// Package common defines sentinel errors and small helpers shared by the
// derivation engine, the stores and the CLI. Callers should use errors.Is to
// match these values; producers wrap them with the offending id.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Registry errors.
	ErrSchemeNotDefined = errors.New("scheme not defined")
	ErrInvalidScheme    = errors.New("invalid scheme")

	// Function table errors. ErrFunctionNotAvailable means the id was never
	// registered; ErrFunctionUnloaded means it was declared but has no
	// implementation in this process.
	ErrFunctionNotAvailable = errors.New("function not available")
	ErrFunctionUnloaded     = errors.New("function declared but not loaded")

	// Parameter errors, reported before any derivation work.
	ErrInvalidParameters = errors.New("invalid parameters")

	// Word function could not produce a compliant password.
	ErrExhausted = errors.New("key material exhausted")

	// Stored checksum does not match the freshly derived one.
	ErrChecksumMismatch = errors.New("checksum does not match")
)
