package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/narvi/internal/scheme"
	"github.com/dmitrijs2005/narvi/internal/services"
)

func newLsHashSchemesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "lshashschemes",
		Short: "List hash schemes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return s.app.printSummaries(s.app.engine.ListHashSchemes())
		},
	}
}

func newLsWordSchemesCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "lswordschemes",
		Short: "List word schemes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return s.app.printSummaries(s.app.engine.ListWordSchemes())
		},
	}
}

func (a *App) printSummaries(list []scheme.Summary) error {
	tw := newTable(a.out)
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s\n", s.ID, s.Description)
	}
	return tw.Flush()
}

func newDefineCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "define FILE",
		Short: "Store user schemes from a YAML or JSON file",
		Long: `Store user schemes from a YAML or JSON file.

The file holds "hashschemes" and "wordschemes" maps keyed by scheme id:

  hashschemes:
    scrypt-fast:
      description: scrypt with N=2^10
      hashfunctionid: scrypt
      hashparams: {N: 1024, r: 8, p: 1, dklen: 512}
  wordschemes:
    pin-8:
      description: eight digits
      wordfunctionid: mindex
      wordparams: {pwlen: 8, alphabet: "0123456789"}

A user scheme replaces a built-in scheme with the same id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var defs services.Definitions
			if err := yaml.Unmarshal(data, &defs); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			if defs.Len() == 0 {
				return fmt.Errorf("%s defines no schemes", args[0])
			}
			if err := s.app.schemes.Define(cmd.Context(), defs); err != nil {
				return err
			}
			fmt.Fprintf(s.app.out, "Defined %d hash and %d word schemes.\n", len(defs.HashSchemes), len(defs.WordSchemes))
			return nil
		},
	}
}

func newUndefineCommand(s *session) *cobra.Command {
	var hashID, wordID string
	cmd := &cobra.Command{
		Use:   "undefine",
		Short: "Remove a user scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if hashID == "" && wordID == "" {
				return errors.New("one of --hash or --word is required")
			}
			if hashID != "" {
				if err := s.app.schemes.UndefineHashScheme(cmd.Context(), hashID); err != nil {
					return err
				}
			}
			if wordID != "" {
				if err := s.app.schemes.UndefineWordScheme(cmd.Context(), wordID); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&hashID, "hash", "", "id of the user hash scheme")
	cmd.Flags().StringVar(&wordID, "word", "", "id of the user word scheme")
	return cmd
}
