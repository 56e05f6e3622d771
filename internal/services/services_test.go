package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/narvi/internal/engine"
	"github.com/dmitrijs2005/narvi/internal/hashfn"
	"github.com/dmitrijs2005/narvi/internal/models"
	"github.com/dmitrijs2005/narvi/internal/plugins"
	"github.com/dmitrijs2005/narvi/internal/scheme"
	"github.com/dmitrijs2005/narvi/internal/store"
	"github.com/dmitrijs2005/narvi/internal/wordfn"
)

// ---- helpers ----

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

type runtime struct {
	registry *scheme.Registry
	engine   *engine.Engine
}

// newRuntime loads the built-in plugins plus a cheap scrypt scheme.
func newRuntime(t *testing.T) runtime {
	t.Helper()
	reg := scheme.NewRegistry()
	hashes := hashfn.NewTable()
	words := wordfn.NewTable()
	require.NoError(t, plugins.Load(reg, hashes, words, plugins.Builtin()...))
	require.NoError(t, reg.RegisterHashScheme(scheme.HashScheme{
		ID:             "scrypt-test",
		HashFunctionID: hashfn.ScryptID,
		Params:         scheme.Params{"N": 16, "r": 1, "p": 1, "dklen": 512},
	}, scheme.LayerContributed))
	return runtime{registry: reg, engine: engine.New(reg, hashes, words, nil)}
}

// ---- fake deriver ----

type fakeDeriver struct {
	result engine.Result
	err    error

	calls      int
	lastSalt   models.Salt
	lastSecret string
}

func (f *fakeDeriver) Derive(_ context.Context, salt models.Salt, secret []byte) (engine.Result, error) {
	f.calls++
	f.lastSalt = salt
	f.lastSecret = string(secret)
	return f.result, f.err
}

var errBoom = errors.New("boom")
