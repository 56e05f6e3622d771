package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/narvi/internal/services"
)

func newImportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load salts and user schemes from a legacy settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			report, err := s.app.importer.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			out := s.app.out
			fmt.Fprintf(out, "Imported %d salts, %d hash and %d word schemes.\n",
				report.Salts, report.HashSchemes, report.WordSchemes)
			if st := report.Settings; st.DefaultHashScheme != "" || st.DefaultWordScheme != "" {
				fmt.Fprintf(out, "Legacy defaults: hash scheme %q, word scheme %q, store checksum %t.\n",
					st.DefaultHashScheme, st.DefaultWordScheme, st.StoreChecksum)
			}
			return nil
		},
	}
}

func newExportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: `Write salts and user schemes in the legacy layout ("-" for stdout)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := s.app
			settings := services.LegacySettings{
				DefaultHashScheme: a.config.DefaultHashScheme,
				DefaultWordScheme: a.config.DefaultWordScheme,
				StoreChecksum:     a.config.StoreChecksum,
			}

			var w io.Writer = a.out
			if args[0] != "-" {
				f, err := os.OpenFile(args[0], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return a.exporter.Export(cmd.Context(), w, settings)
		},
	}
}
