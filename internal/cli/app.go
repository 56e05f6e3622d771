package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/config"
	"github.com/dmitrijs2005/narvi/internal/engine"
	"github.com/dmitrijs2005/narvi/internal/filex"
	"github.com/dmitrijs2005/narvi/internal/hashfn"
	"github.com/dmitrijs2005/narvi/internal/logging"
	"github.com/dmitrijs2005/narvi/internal/models"
	"github.com/dmitrijs2005/narvi/internal/plugins"
	"github.com/dmitrijs2005/narvi/internal/scheme"
	"github.com/dmitrijs2005/narvi/internal/services"
	"github.com/dmitrijs2005/narvi/internal/store"
	"github.com/dmitrijs2005/narvi/internal/wordfn"
)

// App is the state shared by the commands of one invocation.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    *store.Store
	registry *scheme.Registry
	engine   *engine.Engine
	salts    *services.SaltService
	schemes  *services.SchemeService
	importer *services.Importer
	exporter *services.Exporter
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the database named by c and builds the scheme registry:
// built-in plugins first, then the stored user schemes.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	dsn := c.DatabasePath
	if dsn != ":memory:" {
		path, err := filex.EnsureParentDir(dsn)
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	st, err := store.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	reg := scheme.NewRegistry()
	hashes := hashfn.NewTable()
	words := wordfn.NewTable()
	if err := plugins.Load(reg, hashes, words, plugins.Builtin()...); err != nil {
		_ = st.Close()
		return nil, err
	}

	schemes := services.NewSchemeService(st.DB, reg, log)
	if err := schemes.LoadUserSchemes(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	eng := engine.New(reg, hashes, words, log)
	return &App{
		config:   c,
		log:      log,
		store:    st,
		registry: reg,
		engine:   eng,
		salts:    services.NewSaltService(st.Salts, eng, log),
		schemes:  schemes,
		importer: services.NewImporter(st.DB, schemes, log),
		exporter: services.NewExporter(st.Salts, schemes),
		reader:   bufio.NewReader(in),
		out:      out,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

type outcome struct {
	res engine.Result
	err error
}

// derive runs the derivation on its own goroutine and waits for it or for
// ctx. It takes ownership of secret and wipes it when the derivation ends.
func (a *App) derive(ctx context.Context, salt models.Salt, secret []byte) (engine.Result, error) {
	done := make(chan outcome, 1)
	go func() {
		defer common.WipeByteArray(secret)
		res, err := a.salts.Generate(ctx, salt, secret)
		done <- outcome{res: res, err: err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return engine.Result{}, ctx.Err()
	}
}
