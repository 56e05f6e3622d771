// Package hashfn maps hash function ids to key-derivation implementations.
//
// A Function turns (params, master secret, salt) into key material of the
// length its parameters ask for. Functions are pure: the same inputs always
// produce the same bytes, and nothing is cached.
package hashfn

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// Function derives key material. Implementations validate params before
// doing any work and report violations with common.ErrInvalidParameters.
type Function interface {
	Derive(params scheme.Params, secret, salt []byte) ([]byte, error)
}

// FunctionFunc adapts a plain function to Function.
type FunctionFunc func(params scheme.Params, secret, salt []byte) ([]byte, error)

func (f FunctionFunc) Derive(params scheme.Params, secret, salt []byte) ([]byte, error) {
	return f(params, secret, salt)
}

// Table is a registry of hash functions keyed by id.
type Table struct {
	mu    sync.RWMutex
	funcs map[string]Function
}

func NewTable() *Table {
	return &Table{funcs: map[string]Function{}}
}

// Register binds id to f, replacing any earlier binding. A nil f declares
// the id without an implementation; lookups then fail with
// common.ErrFunctionUnloaded instead of common.ErrFunctionNotAvailable.
func (t *Table) Register(id string, f Function) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.funcs[id] = f
}

// Lookup returns the implementation registered for id.
func (t *Table) Lookup(id string) (Function, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, ok := t.funcs[id]
	if !ok {
		return nil, fmt.Errorf("hash function %q: %w", id, common.ErrFunctionNotAvailable)
	}
	if f == nil {
		return nil, fmt.Errorf("hash function %q: %w", id, common.ErrFunctionUnloaded)
	}
	return f, nil
}

// Invoke looks up id and derives key material with it.
func (t *Table) Invoke(id string, params scheme.Params, secret, salt []byte) ([]byte, error) {
	f, err := t.Lookup(id)
	if err != nil {
		return nil, err
	}
	return f.Derive(params, secret, salt)
}

// IDs lists registered ids, including declared-but-unloaded ones.
func (t *Table) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.funcs))
	for id := range t.funcs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
