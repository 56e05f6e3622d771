package wordfn

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

const (
	MindexID   = "mindex"
	Mindex32ID = "mindex32"
)

type SampleParams struct {
	PwLen    int    `json:"pwlen" validate:"gte=1"`
	Alphabet string `json:"alphabet" validate:"required"`
}

// Sample maps key material onto Alphabet by modulo reduction, keeping only
// inputs below the largest multiple of the alphabet size that fits the input
// range so every symbol is equally likely.
//
// With Group == false each byte is one input and the encoder advances one
// byte at a time. With Group == true inputs are little-endian uint32 groups:
// an accepted group advances four bytes, a rejected one advances one byte.
type Sample struct {
	Group bool
}

func (s Sample) Encode(params scheme.Params, key []byte) (string, error) {
	var p SampleParams
	if err := params.Decode(&p); err != nil {
		return "", fmt.Errorf("sample: %w", err)
	}
	alphabet := []rune(p.Alphabet)
	radix := uint64(len(alphabet))
	if radix < 2 {
		return "", fmt.Errorf("%w: alphabet needs at least two symbols", common.ErrInvalidParameters)
	}

	var out strings.Builder
	n := 0
	if s.Group {
		const span = uint64(1) << 32
		limit := span - span%radix
		for pos := 0; n < p.PwLen && pos+4 <= len(key); {
			v := uint64(binary.LittleEndian.Uint32(key[pos:]))
			if v >= limit {
				pos++
				continue
			}
			out.WriteRune(alphabet[v%radix])
			n++
			pos += 4
		}
	} else {
		if radix > 256 {
			return "", fmt.Errorf("%w: byte-wise alphabet of %d symbols exceeds 256", common.ErrInvalidParameters, radix)
		}
		limit := 256 - 256%radix
		for pos := 0; n < p.PwLen && pos < len(key); pos++ {
			v := uint64(key[pos])
			if v >= limit {
				continue
			}
			out.WriteRune(alphabet[v%radix])
			n++
		}
	}

	if n < p.PwLen {
		return "", fmt.Errorf("collected %d of %d symbols: %w", n, p.PwLen, common.ErrExhausted)
	}
	return out.String(), nil
}
