// Package engine runs the derivation pipeline that turns a salt record and a
// master secret into a password.
//
// # Pipeline
//
// Derive works in a fixed order:
//
//  1. resolve the salt's hash scheme, then its word scheme;
//  2. look up both functions, so configuration and plugin errors surface
//     before the expensive KDF runs;
//  3. derive key material with the hash function;
//  4. compute the consistency checksum of the key material;
//  5. encode the key material with the word function;
//  6. wipe the key material and return password and checksum.
//
// The key material is zeroed on every exit path, failures included.
//
// # Errors
//
// Failures wrap the sentinels of internal/common: ErrSchemeNotDefined,
// ErrFunctionNotAvailable, ErrFunctionUnloaded, ErrInvalidParameters and
// ErrExhausted. Every failure is deterministic for the given inputs and is
// returned to the caller without retry.
//
// # Concurrency
//
// An Engine holds no per-call state. Concurrent Derive calls are safe as
// long as registrations into the shared registry are not in flight, which
// the registry's lock enforces. Derive blocks for as long as the KDF runs;
// interactive callers run it on a separate goroutine.
package engine
