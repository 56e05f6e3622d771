package plugins

import (
	"github.com/dmitrijs2005/narvi/internal/hashfn"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// KDF contributes argon2id and PBKDF2-SHA256 as alternatives to scrypt.
func KDF() Contribution {
	return Contribution{
		Name: "kdf",
		HashFunctions: map[string]hashfn.Function{
			hashfn.Argon2idID:     hashfn.Argon2id{},
			hashfn.PBKDF2SHA256ID: hashfn.PBKDF2{},
		},
		HashSchemes: []scheme.HashScheme{
			{
				ID:             "argon2id-3-64m-4-512",
				Description:    "argon2id with t=3, m=64 MiB, 4 lanes, 512-byte hash",
				HashFunctionID: hashfn.Argon2idID,
				Params:         scheme.Params{"time": 3, "memory": 64 * 1024, "threads": 4, "dklen": 512},
			},
			{
				ID:             "pbkdf2-sha256-600k-512",
				Description:    "PBKDF2-HMAC-SHA256 with 600000 iterations, 512-byte hash",
				HashFunctionID: hashfn.PBKDF2SHA256ID,
				Params:         scheme.Params{"iterations": 600000, "dklen": 512},
			},
		},
	}
}
