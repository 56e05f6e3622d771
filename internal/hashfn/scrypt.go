package hashfn

import (
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// ScryptID is the function id of the canonical KDF.
const ScryptID = "scrypt"

// maxBlockParallel bounds r*p; larger products are rejected up front.
const maxBlockParallel = 1 << 30

// ScryptParams are the parameters of a scrypt hash scheme.
type ScryptParams struct {
	// N is the CPU/memory cost; a power of two greater than one.
	N int `json:"N" validate:"gt=1"`
	// R is the block size factor.
	R int `json:"r" validate:"gte=1"`
	// P is the parallelism factor.
	P int `json:"p" validate:"gte=1"`
	// DKLen is the output length in bytes.
	DKLen int `json:"dklen" validate:"gte=1"`
}

func (p ScryptParams) check() error {
	if p.N&(p.N-1) != 0 {
		return fmt.Errorf("scrypt N=%d is not a power of two", p.N)
	}
	if uint64(p.R)*uint64(p.P) >= maxBlockParallel {
		return fmt.Errorf("scrypt r*p=%d must be below 2^30", uint64(p.R)*uint64(p.P))
	}
	return nil
}

// Scrypt derives key material with golang.org/x/crypto/scrypt.
type Scrypt struct{}

func (Scrypt) Derive(params scheme.Params, secret, salt []byte) ([]byte, error) {
	var p ScryptParams
	if err := params.Decode(&p); err != nil {
		return nil, fmt.Errorf("scrypt: %w", err)
	}
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidParameters, err)
	}
	key, err := scrypt.Key(secret, salt, p.N, p.R, p.P, p.DKLen)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %v", common.ErrInvalidParameters, err)
	}
	return key, nil
}
