package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/config"
	"github.com/aoiro-dev/aoiro/internal/render"
)

func newInitCommand(opts *options) *cobra.Command {
	var name string
	var owner string
	var emptyChart bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a new book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.dir = args[0]
			}
			dir, err := opts.bookDir()
			if err != nil {
				return err
			}
			return runInit(cmd, dir, name, owner, !emptyChart)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&owner, "owner", "", "owner name")
	cmd.Flags().BoolVar(&emptyChart, "empty", false, "start without the default chart of accounts")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, owner string, withChart bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	cfg := config.Default(name)
	cfg.Business.Owner = owner
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	s, err := openSession(cmd, dir, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if withChart {
		if _, err := s.books.AddAccounts(cmd.Context(), accounts.DefaultChart()); err != nil {
			return fmt.Errorf("writing chart of accounts: %w", err)
		}
	}

	render.Success(cmd.OutOrStdout(), "Initialized book %q at %s", name, dir)
	return nil
}
