package engine

import (
	"context"
	"time"

	"github.com/dmitrijs2005/narvi/internal/checksum"
	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/hashfn"
	"github.com/dmitrijs2005/narvi/internal/logging"
	"github.com/dmitrijs2005/narvi/internal/models"
	"github.com/dmitrijs2005/narvi/internal/scheme"
	"github.com/dmitrijs2005/narvi/internal/wordfn"
)

// Result is the outcome of a derivation.
type Result struct {
	Password string
	Checksum uint8
}

// Engine wires the scheme registry to the hash and word function tables.
type Engine struct {
	registry *scheme.Registry
	hashes   *hashfn.Table
	words    *wordfn.Table
	log      logging.Logger
}

// New returns an Engine. A nil logger discards output.
func New(registry *scheme.Registry, hashes *hashfn.Table, words *wordfn.Table, log logging.Logger) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{registry: registry, hashes: hashes, words: words, log: log}
}

// Derive computes the password and checksum for salt and masterSecret.
// masterSecret is used as raw bytes; the caller owns it and should wipe it.
func (e *Engine) Derive(ctx context.Context, salt models.Salt, masterSecret []byte) (Result, error) {
	hs, err := e.registry.ResolveHashScheme(salt.HashSchemeID)
	if err != nil {
		return Result{}, err
	}
	ws, err := e.registry.ResolveWordScheme(salt.WordSchemeID)
	if err != nil {
		return Result{}, err
	}

	hf, err := e.hashes.Lookup(hs.HashFunctionID)
	if err != nil {
		return Result{}, err
	}
	wf, err := e.words.Lookup(ws.WordFunctionID)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	log := e.log.With("hashscheme", hs.ID, "wordscheme", ws.ID)
	start := time.Now()

	key, err := hf.Derive(hs.Params, masterSecret, []byte(salt.Value))
	defer common.WipeByteArray(key)
	if err != nil {
		return Result{}, err
	}
	log.Debug(ctx, "derived key material", "bytes", len(key), "took", time.Since(start))

	sum := checksum.Sum(key)

	password, err := wf.Encode(ws.Params, key)
	if err != nil {
		return Result{}, err
	}
	return Result{Password: password, Checksum: sum}, nil
}

// ListHashSchemes returns the effective hash schemes ordered by id.
func (e *Engine) ListHashSchemes() []scheme.Summary {
	return e.registry.HashSchemes()
}

// ListWordSchemes returns the effective word schemes ordered by id.
func (e *Engine) ListWordSchemes() []scheme.Summary {
	return e.registry.WordSchemes()
}
