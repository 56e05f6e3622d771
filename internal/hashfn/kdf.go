package hashfn

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

const (
	Argon2idID     = "argon2id"
	PBKDF2SHA256ID = "pbkdf2-sha256"
)

// Argon2Params are the parameters of an argon2id hash scheme.
type Argon2Params struct {
	Time    uint32 `json:"time" validate:"gte=1"`
	Memory  uint32 `json:"memory" validate:"gte=8"` // KiB
	Threads uint8  `json:"threads" validate:"gte=1"`
	DKLen   uint32 `json:"dklen" validate:"gte=4"`
}

// Argon2id derives key material with golang.org/x/crypto/argon2.
type Argon2id struct{}

func (Argon2id) Derive(params scheme.Params, secret, salt []byte) ([]byte, error) {
	var p Argon2Params
	if err := params.Decode(&p); err != nil {
		return nil, fmt.Errorf("argon2id: %w", err)
	}
	if p.Memory < 8*uint32(p.Threads) {
		return nil, fmt.Errorf("%w: argon2id memory %d KiB is below 8*threads", common.ErrInvalidParameters, p.Memory)
	}
	return argon2.IDKey(secret, salt, p.Time, p.Memory, p.Threads, p.DKLen), nil
}

// PBKDF2Params are the parameters of a pbkdf2-sha256 hash scheme.
type PBKDF2Params struct {
	Iterations int `json:"iterations" validate:"gte=1"`
	DKLen      int `json:"dklen" validate:"gte=1"`
}

// PBKDF2 derives key material with PBKDF2-HMAC-SHA256.
type PBKDF2 struct{}

func (PBKDF2) Derive(params scheme.Params, secret, salt []byte) ([]byte, error) {
	var p PBKDF2Params
	if err := params.Decode(&p); err != nil {
		return nil, fmt.Errorf("pbkdf2-sha256: %w", err)
	}
	return pbkdf2.Key(secret, salt, p.Iterations, p.DKLen, sha256.New), nil
}
