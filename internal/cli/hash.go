package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/engine"
	"github.com/dmitrijs2005/narvi/internal/models"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

func newHashCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "hash [SALT]",
		Short: "Derive the password for SALT",
		Long: `Derive the password for SALT.

A remembered salt uses its stored schemes; when it carries a checksum the
master secret is asked again on mismatch. An unknown salt asks for its
schemes and whether to remember it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.app.hash(cmd.Context(), args)
		},
	}
}

func (a *App) hash(ctx context.Context, args []string) error {
	var value string
	if len(args) == 1 {
		value = args[0]
	} else {
		v, err := Prompt(a.reader, a.out, "Salt", "")
		if err != nil {
			return err
		}
		value = v
	}
	if value == "" {
		return errors.New("salt must not be empty")
	}

	salt, err := a.salts.Lookup(ctx, value)
	switch {
	case err == nil:
		return a.hashKnown(ctx, salt)
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintf(a.out, "INFO: %s not found.\n", value)
		return a.hashNew(ctx, value)
	default:
		return err
	}
}

func (a *App) hashKnown(ctx context.Context, salt models.Salt) error {
	for attempt := 1; attempt <= a.config.MaxAttempts; attempt++ {
		secret, err := getPassword(a.out, "Master password for "+salt.Value+": ")
		if err != nil {
			return err
		}
		res, err := a.derive(ctx, salt, secret)
		if errors.Is(err, common.ErrChecksumMismatch) {
			fmt.Fprintln(a.out, "ERROR: Checksum does not match.")
			continue
		}
		if err != nil {
			return err
		}
		a.printPassword(res)
		return nil
	}
	return fmt.Errorf("salt %q: %w after %d attempts", salt.Value, common.ErrChecksumMismatch, a.config.MaxAttempts)
}

func (a *App) hashNew(ctx context.Context, value string) error {
	salt := models.Salt{Value: value}

	var err error
	if salt.HashSchemeID, err = Prompt(a.reader, a.out, "Hash scheme", a.config.DefaultHashScheme); err != nil {
		return err
	}
	if _, err := a.registry.ResolveHashScheme(salt.HashSchemeID); err != nil {
		return err
	}
	if salt.WordSchemeID, err = Prompt(a.reader, a.out, "Word scheme", a.config.DefaultWordScheme); err != nil {
		return err
	}
	if _, err := a.registry.ResolveWordScheme(salt.WordSchemeID); err != nil {
		return err
	}

	save, err := Confirm(a.reader, a.out, "Save?", true)
	if err != nil {
		return err
	}
	storeChecksum := false
	if save {
		if salt.Description, err = Prompt(a.reader, a.out, "Description", ""); err != nil {
			return err
		}
		if storeChecksum, err = Confirm(a.reader, a.out, "Store checksum?", a.config.StoreChecksum); err != nil {
			return err
		}
	}

	var secret []byte
	if storeChecksum {
		secret, err = a.confirmedSecret(value)
	} else {
		secret, err = getPassword(a.out, "Master password for "+value+": ")
	}
	if err != nil {
		return err
	}

	res, err := a.derive(ctx, salt, secret)
	if err != nil {
		return err
	}
	if save {
		if err := a.salts.Remember(ctx, salt, res, storeChecksum); err != nil {
			return err
		}
	}
	a.printPassword(res)
	return nil
}

// confirmedSecret asks for the master secret twice, up to MaxAttempts
// times, so a stored checksum is never computed from a typo.
func (a *App) confirmedSecret(value string) ([]byte, error) {
	for attempt := 1; attempt <= a.config.MaxAttempts; attempt++ {
		secret, err := getPassword(a.out, "Master password for "+value+": ")
		if err != nil {
			return nil, err
		}
		again, err := getPassword(a.out, "Again: ")
		if err != nil {
			common.WipeByteArray(secret)
			return nil, err
		}
		same := bytes.Equal(secret, again)
		common.WipeByteArray(again)
		if same {
			return secret, nil
		}
		common.WipeByteArray(secret)
		fmt.Fprintln(a.out, "ERROR: Passwords do not match.")
	}
	return nil, fmt.Errorf("master passwords did not match after %d attempts", a.config.MaxAttempts)
}

func (a *App) printPassword(res engine.Result) {
	fmt.Fprintf(a.out, "Password: %s\n", res.Password)
}
