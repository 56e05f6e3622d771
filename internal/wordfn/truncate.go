package wordfn

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

const Base32SimpleID = "base32simple"

type TruncateParams struct {
	PwLen int `json:"pwlen" validate:"gte=1"`
}

// Truncate base32 encodes key material and keeps the first PwLen
// characters. It applies no complexity predicate, which suits answers to
// security questions and other symbol-restricted inputs.
type Truncate struct{}

func (Truncate) Encode(params scheme.Params, key []byte) (string, error) {
	var p TruncateParams
	if err := params.Decode(&p); err != nil {
		return "", fmt.Errorf("truncate: %w", err)
	}
	chars := strings.TrimRight(base32.StdEncoding.EncodeToString(key), "=")
	if len(chars) < p.PwLen {
		return "", fmt.Errorf("need %d characters, key encodes to %d: %w", p.PwLen, len(chars), common.ErrExhausted)
	}
	return chars[:p.PwLen], nil
}
