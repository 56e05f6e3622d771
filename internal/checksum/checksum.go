// Package checksum fingerprints key material so a mistyped master secret can
// be noticed for a salt seen before.
//
// The fingerprint is an 8-bit additive checksum. It is a typo detector, not
// an integrity or authentication mechanism; one in 256 wrong secrets still
// matches.
package checksum

import (
	"fmt"

	"github.com/dmitrijs2005/narvi/internal/common"
)

// Sum returns the sum of all bytes of key modulo 256.
func Sum(key []byte) uint8 {
	var s uint8
	for _, b := range key {
		s += b
	}
	return s
}

// Verify compares a freshly computed checksum with the one stored for a
// salt. A nil stored value means verification was never opted into and is
// skipped.
func Verify(stored *uint8, got uint8) error {
	if stored == nil {
		return nil
	}
	if *stored != got {
		return fmt.Errorf("stored %d, derived %d: %w", *stored, got, common.ErrChecksumMismatch)
	}
	return nil
}
