package plugins

import (
	"fmt"

	"github.com/dmitrijs2005/narvi/internal/hashfn"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// Scrypt contributes the scrypt function and schemes with N = 2^14 .. 2^22,
// r = 8, p = 1 and 512 bytes of key material.
func Scrypt() Contribution {
	c := Contribution{
		Name:          "scrypt",
		HashFunctions: map[string]hashfn.Function{hashfn.ScryptID: hashfn.Scrypt{}},
	}
	for _, logN := range []int{14, 16, 18, 20, 22} {
		c.HashSchemes = append(c.HashSchemes, scheme.HashScheme{
			ID:             fmt.Sprintf("scrypt-%d-8-1-512", logN),
			Description:    fmt.Sprintf("scrypt hash with N=2^%d, r=8, p=1, 512-byte hash", logN),
			HashFunctionID: hashfn.ScryptID,
			Params: scheme.Params{
				"N":     1 << logN,
				"r":     8,
				"p":     1,
				"dklen": 512,
			},
		})
	}
	return c
}
