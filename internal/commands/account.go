package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/render"
)

func newAccountCommand(opts *options) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Chart of accounts",
	}
	accountCmd.AddCommand(
		newAccountAddCommand(opts),
		newAccountListCommand(opts),
		newAccountExportCommand(opts),
		newAccountImportCommand(opts),
	)
	return accountCmd
}

func newAccountAddCommand(opts *options) *cobra.Command {
	var code int
	var name, class string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			c, err := model.ParseClassification(class)
			if err != nil {
				return err
			}
			acct, err := s.books.AddAccount(cmd.Context(), code, name, c)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Added %d %s (%s)", acct.Code, acct.Name, acct.Classification.Label())
			return nil
		}),
	}

	cmd.Flags().IntVar(&code, "code", 0, "account code")
	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&class, "class", "", "asset, liability, equity, revenue or expense (資産/負債/純資産/収益/費用)")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

func newAccountListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts by code",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			chart, err := s.books.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			tbl := render.NewTable([]string{"ID", "コード", "科目", "区分"}, render.Right, render.Left, render.Left, render.Left)
			for _, a := range chart {
				tbl.Add(strconv.FormatInt(a.ID, 10), strconv.Itoa(a.Code), a.Name, a.Classification.Label())
			}
			return tbl.Write(cmd.OutOrStdout())
		}),
	}
}

func newAccountExportCommand(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the chart of accounts as CSV",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			if out == "" {
				return s.books.ExportAccounts(cmd.Context(), cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := s.books.ExportAccounts(cmd.Context(), f); err != nil {
				return err
			}
			return f.Close()
		}),
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newAccountImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add every account in a chart CSV",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			n, err := s.books.ImportAccounts(cmd.Context(), f)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Imported %d accounts", n)
			return nil
		}),
	}
}
