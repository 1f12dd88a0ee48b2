package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/render"
)

func newLossCommand(opts *options) *cobra.Command {
	lossCmd := &cobra.Command{
		Use:   "loss",
		Short: "Net loss carryforward (純損失の繰越控除)",
	}
	lossCmd.AddCommand(
		newLossAddCommand(opts),
		newLossListCommand(opts),
		newLossDeleteCommand(opts),
		newLossUsageCommand(opts),
		newLossSummaryCommand(opts),
		newLossCommitCommand(opts),
	)
	return lossCmd
}

func newLossAddCommand(opts *options) *cobra.Command {
	var l model.LossCarryforward

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a net loss",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			added, err := s.books.AddLossCarryforward(cmd.Context(), l)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Recorded loss %d: %d %s", added.ID, added.LossYear, render.Yen(added.LossAmount))
			return nil
		}),
	}

	cmd.Flags().IntVar(&l.LossYear, "year", 0, "year the loss arose")
	cmd.Flags().Int64Var(&l.LossAmount, "amount", 0, "loss amount in yen")
	cmd.Flags().StringVar(&l.Memo, "memo", "", "memo")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newLossListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List net losses and their usage",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			losses, err := s.books.ListLossCarryforwards(cmd.Context())
			if err != nil {
				return err
			}
			tbl := render.NewTable([]string{"ID", "損失年", "損失額", "1年目", "2年目", "3年目", "残額", "メモ"},
				render.Right, render.Right, render.Right, render.Right, render.Right, render.Right, render.Right, render.Left)
			for _, l := range losses {
				tbl.Add(strconv.FormatInt(l.ID, 10), strconv.Itoa(l.LossYear), render.Amount(l.LossAmount),
					render.Amount(l.UsedYear1), render.Amount(l.UsedYear2), render.Amount(l.UsedYear3),
					render.Amount(l.LossAmount-l.Used()), l.Memo)
			}
			return tbl.Write(cmd.OutOrStdout())
		}),
	}
}

func newLossDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a net loss record",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := s.books.DeleteLossCarryforward(cmd.Context(), id); err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Deleted loss %d", id)
			return nil
		}),
	}
}

func newLossUsageCommand(opts *options) *cobra.Command {
	var used1, used2, used3 int64

	cmd := &cobra.Command{
		Use:   "usage <id>",
		Short: "Set how much of a loss was used in each following year",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := s.books.SetLossUsage(cmd.Context(), id, used1, used2, used3)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Loss %d: %s used, %s remaining", id, render.Yen(l.Used()), render.Yen(l.LossAmount-l.Used()))
			return nil
		}),
	}

	cmd.Flags().Int64Var(&used1, "year1", 0, "used in the first following year")
	cmd.Flags().Int64Var(&used2, "year2", 0, "used in the second following year")
	cmd.Flags().Int64Var(&used3, "year3", 0, "used in the third following year")
	return cmd
}

func newLossSummaryCommand(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Preview the deduction for a year without saving it",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			sum, err := s.books.Summarize(cmd.Context(), year)
			if err != nil {
				return err
			}
			return writeCarryforward(cmd.OutOrStdout(), sum)
		}),
	}

	yearFlag(cmd, &year)
	return cmd
}

func newLossCommitCommand(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Save the deduction for a year into the usage columns",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			sum, err := s.books.CommitCarryforward(cmd.Context(), year)
			if err != nil {
				return err
			}
			if err := writeCarryforward(cmd.OutOrStdout(), sum); err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Saved %s applied in %d", render.Yen(sum.TotalApplied), year)
			return nil
		}),
	}

	yearFlag(cmd, &year)
	return cmd
}
