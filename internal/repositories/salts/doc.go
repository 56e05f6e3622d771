// Package salts persists salt records: the account identifier, the ids
// of the hash and word schemes bound to it, a description and an optional
// checksum.
//
// Basic usage:
//
//	repo := salts.NewSQLiteRepository(db)
//	if err := repo.Save(ctx, salt); err != nil { ... }
//	s, err := repo.Get(ctx, "github.com")
//	if errors.Is(err, common.ErrorNotFound) { ... }
package salts
