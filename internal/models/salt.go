// Package models defines the records narvi persists locally.
package models

// Salt identifies one account: the value fed to the KDF together with the
// schemes that turn it into a password.
type Salt struct {
	// Value is the account identifier, e.g. "github.com" or "bank:alice".
	Value string

	// HashSchemeID and WordSchemeID must resolve in the scheme registry at
	// derivation time.
	HashSchemeID string
	WordSchemeID string

	Description string

	// Checksum is set only when the user opted into stored-checksum
	// verification for this salt.
	Checksum *uint8
}

// HasChecksum reports whether s carries a stored checksum.
func (s Salt) HasChecksum() bool {
	return s.Checksum != nil
}
