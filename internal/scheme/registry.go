package scheme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/narvi/internal/common"
)

// Layer selects which overlay a registration lands in.
type Layer int

const (
	// LayerContributed holds built-in and plugin schemes. Later
	// registrations with the same id overwrite earlier ones, so plugin load
	// order decides the winner.
	LayerContributed Layer = iota
	// LayerUser holds user-defined schemes; they shadow contributed schemes
	// with the same id.
	LayerUser
)

func (l Layer) String() string {
	switch l {
	case LayerContributed:
		return "contributed"
	case LayerUser:
		return "user"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

type layers[T any] struct {
	contributed map[string]T
	user        map[string]T
}

func newLayers[T any]() layers[T] {
	return layers[T]{contributed: map[string]T{}, user: map[string]T{}}
}

func (l *layers[T]) put(layer Layer, id string, v T) error {
	switch layer {
	case LayerContributed:
		l.contributed[id] = v
	case LayerUser:
		l.user[id] = v
	default:
		return fmt.Errorf("%w: unknown %s", common.ErrInvalidScheme, layer)
	}
	return nil
}

func (l *layers[T]) remove(layer Layer, id string) bool {
	m := l.contributed
	if layer == LayerUser {
		m = l.user
	}
	if _, ok := m[id]; !ok {
		return false
	}
	delete(m, id)
	return true
}

func (l *layers[T]) get(id string) (T, bool) {
	if v, ok := l.user[id]; ok {
		return v, true
	}
	v, ok := l.contributed[id]
	return v, ok
}

func (l *layers[T]) ids() []string {
	seen := make(map[string]struct{}, len(l.contributed)+len(l.user))
	for id := range l.contributed {
		seen[id] = struct{}{}
	}
	for id := range l.user {
		seen[id] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Registry resolves hash and word schemes by id across the contributed and
// user layers. It is safe for concurrent use: registration takes the write
// lock, resolution and listing take the read lock.
type Registry struct {
	mu   sync.RWMutex
	hash layers[HashScheme]
	word layers[WordScheme]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		hash: newLayers[HashScheme](),
		word: newLayers[WordScheme](),
	}
}

// RegisterHashScheme stores s in the given layer, replacing any record with
// the same id in that layer as a whole.
func (r *Registry) RegisterHashScheme(s HashScheme, layer Layer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hash.put(layer, s.ID, s.clone())
}

// RegisterWordScheme stores s in the given layer, replacing any record with
// the same id in that layer as a whole.
func (r *Registry) RegisterWordScheme(s WordScheme, layer Layer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.word.put(layer, s.ID, s.clone())
}

// RemoveHashScheme drops id from the given layer. A contributed scheme
// shadowed by the removed user entry becomes effective again.
func (r *Registry) RemoveHashScheme(id string, layer Layer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hash.remove(layer, id) {
		return fmt.Errorf("hash scheme %q in %s: %w", id, layer, common.ErrSchemeNotDefined)
	}
	return nil
}

// RemoveWordScheme is RemoveHashScheme for word schemes.
func (r *Registry) RemoveWordScheme(id string, layer Layer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.word.remove(layer, id) {
		return fmt.Errorf("word scheme %q in %s: %w", id, layer, common.ErrSchemeNotDefined)
	}
	return nil
}

// ResolveHashScheme returns a copy of the effective hash scheme for id.
func (r *Registry) ResolveHashScheme(id string) (HashScheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.hash.get(id)
	if !ok {
		return HashScheme{}, fmt.Errorf("hash scheme %q: %w", id, common.ErrSchemeNotDefined)
	}
	return s.clone(), nil
}

// ResolveWordScheme returns a copy of the effective word scheme for id.
func (r *Registry) ResolveWordScheme(id string) (WordScheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.word.get(id)
	if !ok {
		return WordScheme{}, fmt.Errorf("word scheme %q: %w", id, common.ErrSchemeNotDefined)
	}
	return s.clone(), nil
}

// HashSchemes lists effective hash schemes ordered by id.
func (r *Registry) HashSchemes() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.hash.ids()
	out := make([]Summary, 0, len(ids))
	for _, id := range ids {
		s, _ := r.hash.get(id)
		out = append(out, Summary{ID: id, Description: s.Description})
	}
	return out
}

// WordSchemes lists effective word schemes ordered by id.
func (r *Registry) WordSchemes() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.word.ids()
	out := make([]Summary, 0, len(ids))
	for _, id := range ids {
		s, _ := r.word.get(id)
		out = append(out, Summary{ID: id, Description: s.Description})
	}
	return out
}
