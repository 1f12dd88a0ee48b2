package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/render"
	"github.com/aoiro-dev/aoiro/internal/rent"
)

func newRentCommand(opts *options) *cobra.Command {
	rentCmd := &cobra.Command{
		Use:   "rent",
		Short: "Rent contracts (地代家賃)",
	}
	rentCmd.AddCommand(
		newRentAddCommand(opts),
		newRentListCommand(opts),
		newRentDeleteCommand(opts),
	)
	return rentCmd
}

func newRentAddCommand(opts *options) *cobra.Command {
	var r model.RentDetail

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a rent contract",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			added, err := s.books.AddRentDetail(cmd.Context(), r)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Registered rent %d: %s, deductible %s",
				added.ID, added.PayeeName, render.Yen(rent.Deductible(added)))
			return nil
		}),
	}

	cmd.Flags().StringVar(&r.PayeeName, "payee", "", "payee name")
	cmd.Flags().StringVar(&r.PayeeAddress, "address", "", "payee address")
	cmd.Flags().StringVar(&r.RentType, "type", "", "what is rented, e.g. 事務所")
	cmd.Flags().Int64Var(&r.MonthlyRent, "monthly", 0, "monthly rent in yen")
	cmd.Flags().Int64Var(&r.AnnualTotal, "annual", 0, "annual total (default monthly x 12)")
	cmd.Flags().IntVar(&r.BusinessRatio, "ratio", 100, "business-use percentage (1-100)")
	cmd.Flags().StringVar(&r.Memo, "memo", "", "memo")
	_ = cmd.MarkFlagRequired("payee")
	_ = cmd.MarkFlagRequired("monthly")

	return cmd
}

func newRentListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rent contracts",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			details, err := s.books.ListRentDetails(cmd.Context())
			if err != nil {
				return err
			}
			a := rent.Allocate(details)
			tbl := render.NewTable([]string{"ID", "支払先", "所在地", "賃借物件", "月額", "年額", "事業割合", "必要経費算入額"},
				render.Right, render.Left, render.Left, render.Left, render.Right, render.Right, render.Right, render.Right)
			for _, r := range a.Rows {
				tbl.Add(strconv.FormatInt(r.ID, 10), r.PayeeName, r.PayeeAddress, r.RentType,
					render.Amount(r.MonthlyRent), render.Amount(r.AnnualTotal),
					strconv.Itoa(r.BusinessRatio)+"%", render.Amount(r.Deductible))
			}
			tbl.Footer("", "計", "", "", "", "", "", render.Amount(a.Total))
			return tbl.Write(cmd.OutOrStdout())
		}),
	}
}

func newRentDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a rent contract",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := s.books.DeleteRentDetail(cmd.Context(), id); err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Deleted rent %d", id)
			return nil
		}),
	}
}
