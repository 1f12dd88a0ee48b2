package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/render"
)

func newEntryCommand(opts *options) *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entries",
	}
	entryCmd.AddCommand(
		newEntryAddCommand(opts),
		newEntryUpdateCommand(opts),
		newEntryDeleteCommand(opts),
		newEntryListCommand(opts),
		newEntryExportCommand(opts),
		newEntryImportCommand(opts),
	)
	return entryCmd
}

// entryFlags are shared by add and update. Accounts are given by code.
type entryFlags struct {
	date         string
	debit        int
	credit       int
	amount       int64
	creditAmount int64
	desc         string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "entry date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.debit, "debit", 0, "debit account code")
	cmd.Flags().IntVar(&f.credit, "credit", 0, "credit account code")
	cmd.Flags().Int64Var(&f.amount, "amount", 0, "amount in yen")
	cmd.Flags().Int64Var(&f.creditAmount, "credit-amount", 0, "credit amount when it differs from --amount")
	cmd.Flags().StringVar(&f.desc, "desc", "", "description")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")
}

func (f *entryFlags) entry(s *session, cmd *cobra.Command) (model.JournalEntry, error) {
	date, err := parseDate(f.date)
	if err != nil {
		return model.JournalEntry{}, err
	}
	chart, err := s.books.ListAccounts(cmd.Context())
	if err != nil {
		return model.JournalEntry{}, err
	}
	svc := accounts.NewService(chart)
	debit, ok := svc.ByCode(f.debit)
	if !ok {
		return model.JournalEntry{}, fmt.Errorf("%w: debit code %d", model.ErrMissingAccount, f.debit)
	}
	credit, ok := svc.ByCode(f.credit)
	if !ok {
		return model.JournalEntry{}, fmt.Errorf("%w: credit code %d", model.ErrMissingAccount, f.credit)
	}
	creditAmount := f.amount
	if cmd.Flags().Changed("credit-amount") {
		creditAmount = f.creditAmount
	}
	return model.JournalEntry{
		Date:            date,
		DebitAccountID:  debit.ID,
		DebitAmount:     f.amount,
		CreditAccountID: credit.ID,
		CreditAmount:    creditAmount,
		Description:     f.desc,
	}, nil
}

func newEntryAddCommand(opts *options) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a journal entry",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			e, err := flags.entry(s, cmd)
			if err != nil {
				return err
			}
			id, err := s.books.AddEntry(cmd.Context(), e)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Recorded entry %d: %s %s", id, e.Date.Format(model.DateFormat), render.Yen(e.DebitAmount))
			return nil
		}),
	}

	flags.register(cmd)
	return cmd
}

func newEntryUpdateCommand(opts *options) *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := flags.entry(s, cmd)
			if err != nil {
				return err
			}
			e.ID = id
			if err := s.books.UpdateEntry(cmd.Context(), e); err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Updated entry %d", id)
			return nil
		}),
	}

	flags.register(cmd)
	return cmd
}

func newEntryDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := s.books.DeleteEntry(cmd.Context(), id); err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Deleted entry %d", id)
			return nil
		}),
	}
}

func periodFlags(cmd *cobra.Command, year, month *int) {
	yearFlag(cmd, year)
	cmd.Flags().IntVar(month, "month", 0, "month (1-12); whole year when omitted")
}

func newEntryListCommand(opts *options) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries in date order",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			entries, err := s.books.ListEntries(cmd.Context(), model.Month(year, month))
			if err != nil {
				return err
			}
			tbl := render.NewTable([]string{"ID", "日付", "借方", "貸方", "金額", "摘要"},
				render.Right, render.Left, render.Left, render.Left, render.Right, render.Left)
			var total int64
			for e := range entries {
				tbl.Add(strconv.FormatInt(e.ID, 10), e.Date.Format(model.DateFormat),
					e.DebitAccountName, e.CreditAccountName, render.Amount(e.Amount()), e.Description)
				total += e.Amount()
			}
			tbl.Footer("", "", "", "合計", render.Amount(total))
			return tbl.Write(cmd.OutOrStdout())
		}),
	}

	periodFlags(cmd, &year, &month)
	return cmd
}

func newEntryExportCommand(opts *options) *cobra.Command {
	var year, month int
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write journal entries as CSV",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			p := model.Month(year, month)
			if out == "" {
				return s.books.ExportEntries(cmd.Context(), cmd.OutOrStdout(), p)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := s.books.ExportEntries(cmd.Context(), f, p); err != nil {
				return err
			}
			return f.Close()
		}),
	}

	periodFlags(cmd, &year, &month)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newEntryImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Record every row of a journal CSV",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			n, err := s.books.ImportEntries(cmd.Context(), f)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Imported %d entries", n)
			return nil
		}),
	}
}
