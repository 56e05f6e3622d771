package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/narvi/internal/config"
	"github.com/dmitrijs2005/narvi/internal/logging"
)

// Streams are the standard streams of one invocation. Master secrets are
// always read from the terminal on standard input.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// session holds the App built by the root pre-run so Execute can close it
// whatever the command returns.
type session struct {
	app *App
}

func (s *session) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "narvi",
		Short:         "Derive per-account passwords from one master secret",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(config.Options{EnvFile: ".env", Flags: cmd.Flags()})
			if err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			s.app, err = NewApp(cmd.Context(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newHashCommand(s),
		newListCommand(s),
		newInfoCommand(s),
		newForgetCommand(s),
		newLsHashSchemesCommand(s),
		newLsWordSchemesCommand(s),
		newDefineCommand(s),
		newUndefineCommand(s),
		newImportCommand(s),
		newExportCommand(s),
	)
	return root
}

// Execute runs the command line given by args.
func Execute(ctx context.Context, args []string, streams Streams) error {
	s := &session{}
	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	err := root.ExecuteContext(ctx)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}
