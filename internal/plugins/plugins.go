// Package plugins declares the built-in scheme contributions and loads them
// into a registry and function tables.
//
// Each Contribution bundles hash schemes, hash functions, word schemes and
// word functions. Load applies contributions in the order given; a later
// contribution overwrites schemes and functions with the same id from an
// earlier one. Builtin returns the built-in contributions in their fixed
// load order: scrypt, kdf, wordify.
package plugins

import (
	"fmt"

	"github.com/dmitrijs2005/narvi/internal/hashfn"
	"github.com/dmitrijs2005/narvi/internal/scheme"
	"github.com/dmitrijs2005/narvi/internal/wordfn"
)

// Contribution is one source of schemes and functions. A nil function value
// declares the id as registered but unavailable.
type Contribution struct {
	Name          string
	HashSchemes   []scheme.HashScheme
	HashFunctions map[string]hashfn.Function
	WordSchemes   []scheme.WordScheme
	WordFunctions map[string]wordfn.Encoder
}

// Builtin returns the contributions compiled into narvi.
func Builtin() []Contribution {
	return []Contribution{Scrypt(), KDF(), Wordify()}
}

// Load registers every contribution into the contributed layer of reg and
// into the function tables, in order.
func Load(reg *scheme.Registry, hashes *hashfn.Table, words *wordfn.Table, contributions ...Contribution) error {
	for _, c := range contributions {
		for id, f := range c.HashFunctions {
			hashes.Register(id, f)
		}
		for id, e := range c.WordFunctions {
			words.Register(id, e)
		}
		for _, s := range c.HashSchemes {
			if err := reg.RegisterHashScheme(s, scheme.LayerContributed); err != nil {
				return fmt.Errorf("plugin %s: %w", c.Name, err)
			}
		}
		for _, s := range c.WordSchemes {
			if err := reg.RegisterWordScheme(s, scheme.LayerContributed); err != nil {
				return fmt.Errorf("plugin %s: %w", c.Name, err)
			}
		}
	}
	return nil
}
