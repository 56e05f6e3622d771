// Package wordfn turns key material into printable passwords.
//
// Three encoding strategies are provided, each a pure function of
// (params, key material):
//
//   - Windowed: base64/base32 encode, then return the first fixed-width
//     window that passes a weighted complexity predicate.
//   - Truncate: base32 encode and cut to length.
//   - Sample: rejection-sample bytes (or 4-byte groups) onto an arbitrary
//     alphabet without modulo bias.
//
// When the key material cannot yield a compliant password the encoders
// return common.ErrExhausted. The input is fixed and deterministic, so the
// failure is final for that (scheme, key) pair.
package wordfn

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// Encoder is the common interface of all word functions.
type Encoder interface {
	Encode(params scheme.Params, key []byte) (string, error)
}

// Table maps word function ids to encoders.
type Table struct {
	mu   sync.RWMutex
	encs map[string]Encoder
}

func NewTable() *Table {
	return &Table{encs: map[string]Encoder{}}
}

// Register binds id to e. A nil e declares the id without an
// implementation.
func (t *Table) Register(id string, e Encoder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.encs[id] = e
}

func (t *Table) Lookup(id string) (Encoder, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.encs[id]
	if !ok {
		return nil, fmt.Errorf("word function %q: %w", id, common.ErrFunctionNotAvailable)
	}
	if e == nil {
		return nil, fmt.Errorf("word function %q: %w", id, common.ErrFunctionUnloaded)
	}
	return e, nil
}

func (t *Table) Invoke(id string, params scheme.Params, key []byte) (string, error) {
	e, err := t.Lookup(id)
	if err != nil {
		return "", err
	}
	return e.Encode(params, key)
}

func (t *Table) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.encs))
	for id := range t.encs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
