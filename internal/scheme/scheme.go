// Package scheme holds named hash and word schemes and the layered registry
// that resolves them.
//
// A scheme is a (function id, parameters) pair. Its id is the version: the
// parameters of a scheme are fixed when it is created, and changing strength
// for an account means pointing the salt at a different id.
package scheme

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/narvi/internal/common"
)

// Params is the JSON-compatible parameter set of a scheme.
type Params map[string]any

// HashScheme names a key-derivation function and its parameters.
type HashScheme struct {
	ID             string `json:"-" yaml:"-"`
	Description    string `json:"description" yaml:"description"`
	HashFunctionID string `json:"hashfunctionid" yaml:"hashfunctionid"`
	Params         Params `json:"hashparams" yaml:"hashparams"`
}

// WordScheme names an encoder and its parameters.
type WordScheme struct {
	ID             string `json:"-" yaml:"-"`
	Description    string `json:"description" yaml:"description"`
	WordFunctionID string `json:"wordfunctionid" yaml:"wordfunctionid"`
	Params         Params `json:"wordparams" yaml:"wordparams"`
}

// Validate reports common.ErrInvalidScheme when s cannot be registered.
func (s HashScheme) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: hash scheme without id", common.ErrInvalidScheme)
	}
	if s.HashFunctionID == "" {
		return fmt.Errorf("%w: hash scheme %q has no function id", common.ErrInvalidScheme, s.ID)
	}
	return nil
}

// Validate reports common.ErrInvalidScheme when s cannot be registered.
func (s WordScheme) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: word scheme without id", common.ErrInvalidScheme)
	}
	if s.WordFunctionID == "" {
		return fmt.Errorf("%w: word scheme %q has no function id", common.ErrInvalidScheme, s.ID)
	}
	return nil
}

// Summary is the presentation view of a scheme.
type Summary struct {
	ID          string
	Description string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode converts p into the typed struct pointed to by dst and validates
// it against its `validate` tags. Any failure wraps
// common.ErrInvalidParameters.
func (p Params) Decode(dst any) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidParameters, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidParameters, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidParameters, err)
	}
	return nil
}

// Clone returns a deep copy of p. Nested maps and slices produced by JSON or
// YAML decoding are copied too.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Params:
		return t.Clone()
	case map[string]any:
		return map[string]any(Params(t).Clone())
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i := range t {
			out[i] = map[string]any(Params(t[i]).Clone())
		}
		return out
	default:
		return v
	}
}

func (s HashScheme) clone() HashScheme {
	s.Params = s.Params.Clone()
	return s
}

func (s WordScheme) clone() WordScheme {
	s.Params = s.Params.Clone()
	return s
}
