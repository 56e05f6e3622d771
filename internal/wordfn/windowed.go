package wordfn

import (
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

const (
	Base64ID = "base64"
	Base32ID = "base32"
)

const base64Core = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Radix selects the alphabet of a Windowed encoder.
type Radix int

const (
	Radix64 Radix = 64
	Radix32 Radix = 32
)

// WindowedParams configure a Windowed encoder.
type WindowedParams struct {
	PwLen int `json:"pwlen" validate:"gte=1"`
	// AltChars replace '+' and '/' of the standard base64 alphabet.
	AltChars   string      `json:"altchars" validate:"omitempty,len=2,printascii"`
	Complexity *Complexity `json:"complexity"`
}

// Windowed encodes key material in base64 or base32, drops padding, and
// returns the first window of PwLen characters that satisfies the
// complexity predicate, scanning start offsets from zero upwards.
type Windowed struct {
	Radix Radix
}

func (w Windowed) Encode(params scheme.Params, key []byte) (string, error) {
	var p WindowedParams
	if err := params.Decode(&p); err != nil {
		return "", fmt.Errorf("windowed: %w", err)
	}
	pred, err := p.Complexity.compile()
	if err != nil {
		return "", err
	}
	chars, err := w.encode(key, p.AltChars)
	if err != nil {
		return "", err
	}
	chars = strings.TrimRight(chars, "=")

	for pos := 0; pos+p.PwLen <= len(chars); pos++ {
		candidate := chars[pos : pos+p.PwLen]
		if pred.accepts(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no %d-character window of %d satisfies the complexity tests: %w",
		p.PwLen, len(chars), common.ErrExhausted)
}

func (w Windowed) encode(key []byte, altchars string) (string, error) {
	switch w.Radix {
	case Radix64:
		if altchars == "" {
			return base64.StdEncoding.EncodeToString(key), nil
		}
		if err := checkAltChars(altchars); err != nil {
			return "", err
		}
		enc := base64.NewEncoding(base64Core + altchars)
		return enc.EncodeToString(key), nil
	case Radix32:
		if altchars != "" {
			return "", fmt.Errorf("%w: altchars apply to base64 only", common.ErrInvalidParameters)
		}
		return base32.StdEncoding.EncodeToString(key), nil
	default:
		return "", fmt.Errorf("%w: unsupported radix %d", common.ErrInvalidParameters, w.Radix)
	}
}

func checkAltChars(alt string) error {
	if alt[0] == alt[1] || alt[0] == '=' || alt[1] == '=' ||
		strings.ContainsAny(base64Core, alt) {
		return fmt.Errorf("%w: altchars %q collide with the base64 alphabet", common.ErrInvalidParameters, alt)
	}
	return nil
}
