package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/render"
)

func newAssetCommand(opts *options) *cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Fixed assets and depreciation",
	}
	assetCmd.AddCommand(
		newAssetAddCommand(opts),
		newAssetListCommand(opts),
		newAssetDeleteCommand(opts),
		newAssetScheduleCommand(opts),
	)
	return assetCmd
}

func newAssetAddCommand(opts *options) *cobra.Command {
	var (
		a                  model.FixedAsset
		date, method, rate string
		inactive           bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a fixed asset",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			var err error
			if a.AcquisitionDate, err = parseDate(date); err != nil {
				return err
			}
			if a.Method, err = model.ParseDepreciationMethod(method); err != nil {
				return err
			}
			if rate != "" {
				if a.Rate, err = model.ParseRate(rate); err != nil {
					return err
				}
			}
			a.Active = !inactive
			added, err := s.books.AddFixedAsset(cmd.Context(), a)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Registered asset %d: %s %s (rate %s)",
				added.ID, added.Name, render.Yen(added.AcquisitionCost), model.FormatRate(added.Rate))
			return nil
		}),
	}

	cmd.Flags().StringVar(&a.Name, "name", "", "asset name")
	cmd.Flags().StringVar(&date, "date", "", "acquisition date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&a.AcquisitionCost, "cost", 0, "acquisition cost in yen")
	cmd.Flags().IntVar(&a.UsefulLife, "life", 0, "useful life in years")
	cmd.Flags().StringVar(&method, "method", string(model.StraightLine), "depreciation method")
	cmd.Flags().StringVar(&rate, "rate", "", "depreciation rate, e.g. 0.200 (default: statutory rate for --life)")
	cmd.Flags().Int64Var(&a.AccumulatedDep, "accumulated", 0, "depreciation accumulated before this year")
	cmd.Flags().StringVar(&a.Memo, "memo", "", "memo")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "exclude from depreciation")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("cost")
	_ = cmd.MarkFlagRequired("life")

	return cmd
}

func newAssetListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fixed assets",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			assets, err := s.books.ListFixedAssets(cmd.Context())
			if err != nil {
				return err
			}
			tbl := render.NewTable([]string{"ID", "資産", "取得日", "取得価額", "耐用年数", "償却方法", "償却率", "償却累計額"},
				render.Right, render.Left, render.Left, render.Right, render.Right, render.Left, render.Right, render.Right)
			for _, a := range assets {
				name := a.Name
				if !a.Active {
					name += " (除外)"
				}
				tbl.Add(strconv.FormatInt(a.ID, 10), name, a.AcquisitionDate.Format(model.DateFormat),
					render.Amount(a.AcquisitionCost), strconv.Itoa(a.UsefulLife), a.Method.Label(),
					model.FormatRate(a.Rate), render.Amount(a.AccumulatedDep))
			}
			return tbl.Write(cmd.OutOrStdout())
		}),
	}
}

func newAssetDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a fixed asset",
		Args:  cobra.ExactArgs(1),
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := s.books.DeleteFixedAsset(cmd.Context(), id); err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Deleted asset %d", id)
			return nil
		}),
	}
}

func newAssetScheduleCommand(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Depreciation schedule for a year",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			sched, err := s.books.Depreciation(cmd.Context(), year)
			if err != nil {
				return err
			}
			return writeSchedule(cmd.OutOrStdout(), sched)
		}),
	}

	yearFlag(cmd, &year)
	return cmd
}
