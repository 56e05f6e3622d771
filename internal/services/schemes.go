package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/narvi/internal/dbx"
	"github.com/dmitrijs2005/narvi/internal/logging"
	"github.com/dmitrijs2005/narvi/internal/repositories/schemes"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// Definitions is a set of user schemes keyed by id, as found in definition
// files and in the legacy settings file.
type Definitions struct {
	HashSchemes map[string]scheme.HashScheme `json:"hashschemes" yaml:"hashschemes"`
	WordSchemes map[string]scheme.WordScheme `json:"wordschemes" yaml:"wordschemes"`
}

// Len is the number of schemes in d.
func (d Definitions) Len() int {
	return len(d.HashSchemes) + len(d.WordSchemes)
}

func (d Definitions) hashList() []scheme.HashScheme {
	out := make([]scheme.HashScheme, 0, len(d.HashSchemes))
	for id, s := range d.HashSchemes {
		s.ID = id
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (d Definitions) wordList() []scheme.WordScheme {
	out := make([]scheme.WordScheme, 0, len(d.WordSchemes))
	for id, s := range d.WordSchemes {
		s.ID = id
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (d Definitions) validate() error {
	for _, s := range d.hashList() {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for _, s := range d.wordList() {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SchemeService persists user schemes and keeps the registry's user layer
// in sync with the database.
type SchemeService struct {
	db       *sql.DB
	repo     schemes.Repository
	registry *scheme.Registry
	log      logging.Logger
}

func NewSchemeService(db *sql.DB, registry *scheme.Registry, log logging.Logger) *SchemeService {
	if log == nil {
		log = logging.Discard()
	}
	return &SchemeService{
		db:       db,
		repo:     schemes.NewSQLiteRepository(db),
		registry: registry,
		log:      log,
	}
}

// LoadUserSchemes registers every stored scheme into the user layer.
func (s *SchemeService) LoadUserSchemes(ctx context.Context) error {
	hs, err := s.repo.ListHashSchemes(ctx)
	if err != nil {
		return err
	}
	ws, err := s.repo.ListWordSchemes(ctx)
	if err != nil {
		return err
	}

	for _, h := range hs {
		if err := s.registry.RegisterHashScheme(h, scheme.LayerUser); err != nil {
			return fmt.Errorf("stored hash scheme %q: %w", h.ID, err)
		}
	}
	for _, w := range ws {
		if err := s.registry.RegisterWordScheme(w, scheme.LayerUser); err != nil {
			return fmt.Errorf("stored word scheme %q: %w", w.ID, err)
		}
	}

	s.log.Debug(ctx, "loaded user schemes", "hashschemes", len(hs), "wordschemes", len(ws))
	return nil
}

// Define persists defs in one transaction and then registers them into the
// user layer. Nothing is stored or registered when any definition is
// invalid.
func (s *SchemeService) Define(ctx context.Context, defs Definitions) error {
	if err := defs.validate(); err != nil {
		return err
	}
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return s.store(ctx, tx, defs)
	})
	if err != nil {
		return err
	}
	return s.register(ctx, defs)
}

// UndefineHashScheme deletes a user hash scheme. A contributed scheme with
// the same id becomes effective again.
func (s *SchemeService) UndefineHashScheme(ctx context.Context, id string) error {
	if err := s.repo.DeleteHashScheme(ctx, id); err != nil {
		return err
	}
	if err := s.registry.RemoveHashScheme(id, scheme.LayerUser); err != nil {
		s.log.Warn(ctx, "hash scheme was stored but not registered", "id", id)
	}
	return nil
}

// UndefineWordScheme deletes a user word scheme.
func (s *SchemeService) UndefineWordScheme(ctx context.Context, id string) error {
	if err := s.repo.DeleteWordScheme(ctx, id); err != nil {
		return err
	}
	if err := s.registry.RemoveWordScheme(id, scheme.LayerUser); err != nil {
		s.log.Warn(ctx, "word scheme was stored but not registered", "id", id)
	}
	return nil
}

// UserSchemes returns the stored user schemes.
func (s *SchemeService) UserSchemes(ctx context.Context) (Definitions, error) {
	hs, err := s.repo.ListHashSchemes(ctx)
	if err != nil {
		return Definitions{}, err
	}
	ws, err := s.repo.ListWordSchemes(ctx)
	if err != nil {
		return Definitions{}, err
	}

	defs := Definitions{
		HashSchemes: make(map[string]scheme.HashScheme, len(hs)),
		WordSchemes: make(map[string]scheme.WordScheme, len(ws)),
	}
	for _, h := range hs {
		defs.HashSchemes[h.ID] = h
	}
	for _, w := range ws {
		defs.WordSchemes[w.ID] = w
	}
	return defs, nil
}

func (s *SchemeService) store(ctx context.Context, tx dbx.DBTX, defs Definitions) error {
	repo := schemes.NewSQLiteRepository(tx)
	for _, h := range defs.hashList() {
		if err := repo.SaveHashScheme(ctx, h); err != nil {
			return err
		}
	}
	for _, w := range defs.wordList() {
		if err := repo.SaveWordScheme(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

func (s *SchemeService) register(ctx context.Context, defs Definitions) error {
	for _, h := range defs.hashList() {
		if err := s.registry.RegisterHashScheme(h, scheme.LayerUser); err != nil {
			return err
		}
		s.log.Info(ctx, "defined hash scheme", "id", h.ID, "function", h.HashFunctionID)
	}
	for _, w := range defs.wordList() {
		if err := s.registry.RegisterWordScheme(w, scheme.LayerUser); err != nil {
			return err
		}
		s.log.Info(ctx, "defined word scheme", "id", w.ID, "function", w.WordFunctionID)
	}
	return nil
}
