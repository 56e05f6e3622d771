package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/models"
	"github.com/dmitrijs2005/narvi/internal/scheme"
	"github.com/dmitrijs2005/narvi/internal/wordfn"
)

func binaryPin() Definitions {
	return Definitions{
		WordSchemes: map[string]scheme.WordScheme{
			"pin-4": {
				Description:    "four binary digits",
				WordFunctionID: wordfn.MindexID,
				Params:         scheme.Params{"pwlen": 4, "alphabet": "01"},
			},
		},
	}
}

func TestDefine_OverlaysAndPersists(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	rt := newRuntime(t)
	svc := NewSchemeService(st.DB, rt.registry, nil)

	require.NoError(t, svc.Define(ctx, binaryPin()))

	ws, err := rt.registry.ResolveWordScheme("pin-4")
	require.NoError(t, err)
	assert.Equal(t, "four binary digits", ws.Description)

	res, err := rt.engine.Derive(ctx, models.Salt{Value: "x", HashSchemeID: "scrypt-test", WordSchemeID: "pin-4"}, []byte("s"))
	require.NoError(t, err)
	assert.Regexp(t, `^[01]{4}$`, res.Password)

	stored, err := st.Schemes.ListWordSchemes(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "pin-4", stored[0].ID)
}

func TestLoadUserSchemes_OverlaySurvivesReload(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)

	require.NoError(t, NewSchemeService(st.DB, newRuntime(t).registry, nil).Define(ctx, binaryPin()))

	// a fresh process: built-ins first, then the stored user layer
	rt := newRuntime(t)
	ws, err := rt.registry.ResolveWordScheme("pin-4")
	require.NoError(t, err)
	assert.Equal(t, wordfn.MindexID, ws.WordFunctionID)
	assert.NotEqual(t, "four binary digits", ws.Description)

	require.NoError(t, NewSchemeService(st.DB, rt.registry, nil).LoadUserSchemes(ctx))
	ws, err = rt.registry.ResolveWordScheme("pin-4")
	require.NoError(t, err)
	assert.Equal(t, "four binary digits", ws.Description)
}

func TestDefine_InvalidStoresNothing(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	rt := newRuntime(t)
	svc := NewSchemeService(st.DB, rt.registry, nil)

	defs := binaryPin()
	defs.HashSchemes = map[string]scheme.HashScheme{"broken": {Description: "no function"}}

	err := svc.Define(ctx, defs)
	require.ErrorIs(t, err, common.ErrInvalidScheme)

	stored, err := st.Schemes.ListWordSchemes(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	ws, err := rt.registry.ResolveWordScheme("pin-4")
	require.NoError(t, err)
	assert.NotEqual(t, "four binary digits", ws.Description)
}

func TestUndefine_RevealsContributed(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	rt := newRuntime(t)
	svc := NewSchemeService(st.DB, rt.registry, nil)

	require.NoError(t, svc.Define(ctx, binaryPin()))
	require.NoError(t, svc.UndefineWordScheme(ctx, "pin-4"))

	ws, err := rt.registry.ResolveWordScheme("pin-4")
	require.NoError(t, err)
	assert.NotEqual(t, "four binary digits", ws.Description)

	require.ErrorIs(t, svc.UndefineWordScheme(ctx, "pin-4"), common.ErrorNotFound)
	require.ErrorIs(t, svc.UndefineHashScheme(ctx, "nope"), common.ErrorNotFound)
}

func TestUserSchemes_OnlyStored(t *testing.T) {
	ctx := context.Background()
	st := openStore(t)
	svc := NewSchemeService(st.DB, newRuntime(t).registry, nil)

	require.NoError(t, svc.Define(ctx, Definitions{
		HashSchemes: map[string]scheme.HashScheme{
			"pbkdf2-fast": {HashFunctionID: "pbkdf2-sha256", Params: scheme.Params{"iterations": 10, "dklen": 64}},
		},
	}))

	defs, err := svc.UserSchemes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, defs.Len())
	assert.Equal(t, "pbkdf2-fast", defs.HashSchemes["pbkdf2-fast"].ID)
}
