package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/narvi/internal/scheme"
)

func newListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remembered salts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := s.app.salts.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(s.app.out)
			for _, salt := range list {
				fmt.Fprintf(tw, "%s\t%s\n", salt.Value, salt.Description)
			}
			return tw.Flush()
		},
	}
}

func newInfoCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info SALT",
		Short: "Show what is remembered about SALT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := s.app
			salt, err := a.salts.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			checksum := "none"
			if salt.HasChecksum() {
				checksum = "stored"
			}
			tw := newTable(a.out)
			fmt.Fprintf(tw, "salt:\t%s\n", salt.Value)
			fmt.Fprintf(tw, "description:\t%s\n", salt.Description)
			fmt.Fprintf(tw, "hash scheme:\t%s\t%s\n", salt.HashSchemeID, describeHash(a.registry, salt.HashSchemeID))
			fmt.Fprintf(tw, "word scheme:\t%s\t%s\n", salt.WordSchemeID, describeWord(a.registry, salt.WordSchemeID))
			fmt.Fprintf(tw, "checksum:\t%s\n", checksum)
			return tw.Flush()
		},
	}
}

func newForgetCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "forget SALT",
		Short: "Remove a remembered salt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.app.salts.Forget(cmd.Context(), args[0])
		},
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func describeHash(reg *scheme.Registry, id string) string {
	s, err := reg.ResolveHashScheme(id)
	if err != nil {
		return "(not defined)"
	}
	return s.Description
}

func describeWord(reg *scheme.Registry, id string) string {
	s, err := reg.ResolveWordScheme(id)
	if err != nil {
		return "(not defined)"
	}
	return s.Description
}
