// Package depreciation computes the yearly write-down of fixed assets
// (減価償却費の計算).
package depreciation

import (
	"fmt"
	"strings"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// MemorandumValue is the book value a fully depreciated asset keeps (備忘価額).
const MemorandumValue = 1

// Row is one asset's line in the schedule.
type Row struct {
	AssetID            int64
	Name               string
	AcquisitionDate    string
	AcquisitionCost    int64
	Method             model.DepreciationMethod
	UsefulLife         int
	Rate               int
	MonthsUsed         int
	AnnualDep          int64
	AccumulatedDepPrev int64
	CurrentYearDep     int64
	AccumulatedDepEnd  int64
	BookValueEnd       int64
}

// Schedule is the depreciation table for one fiscal year.
type Schedule struct {
	Year  int
	Rows  []Row
	Total int64
}

// StatutoryRate returns the straight-line rate for a useful life, scaled by
// model.RateScale: 1/life rounded up to three decimals (3 years -> 0.334).
func StatutoryRate(usefulLife int) int {
	if usefulLife <= 0 {
		return 0
	}
	return (1000 + usefulLife - 1) / usefulLife * 10
}

// Validate checks an asset before it is stored and fills defaults:
// the method defaults to straight-line and a zero rate to the statutory rate.
func Validate(a model.FixedAsset) (model.FixedAsset, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return a, fmt.Errorf("%w: name is required", model.ErrInvalidAsset)
	}
	if a.AcquisitionDate.IsZero() {
		return a, fmt.Errorf("%w: acquisition date is required", model.ErrInvalidAsset)
	}
	if a.AcquisitionCost <= 0 {
		return a, fmt.Errorf("%w: acquisition cost %d must be positive", model.ErrInvalidAsset, a.AcquisitionCost)
	}
	if a.UsefulLife <= 0 {
		return a, fmt.Errorf("%w: useful life %d must be positive", model.ErrInvalidAsset, a.UsefulLife)
	}
	method, err := model.ParseDepreciationMethod(string(a.Method))
	if err != nil {
		return a, err
	}
	a.Method = method
	if a.Rate < 0 || a.Rate > model.RateScale {
		return a, fmt.Errorf("%w: rate %d out of range", model.ErrInvalidAsset, a.Rate)
	}
	if a.Rate == 0 {
		a.Rate = StatutoryRate(a.UsefulLife)
	}
	if a.AccumulatedDep < 0 || a.AccumulatedDep >= a.AcquisitionCost {
		return a, fmt.Errorf("%w: accumulated depreciation %d must be within [0, %d)",
			model.ErrInvalidAsset, a.AccumulatedDep, a.AcquisitionCost)
	}
	return a, nil
}

// Compute builds the schedule for year. Inactive assets and assets acquired
// after year are left out. Stored assets are never modified.
func Compute(assets []model.FixedAsset, year int) Schedule {
	s := Schedule{Year: year}
	for _, a := range assets {
		if !a.Active || a.AcquisitionDate.Year() > year {
			continue
		}
		row := computeRow(a, year)
		s.Rows = append(s.Rows, row)
		s.Total += row.CurrentYearDep
	}
	return s
}

func computeRow(a model.FixedAsset, year int) Row {
	months := monthsUsed(a, year)
	annual := a.AcquisitionCost * int64(a.Rate) / model.RateScale

	current := annual
	if months < 12 {
		current = annual * int64(months) / 12
	}

	ceiling := a.AcquisitionCost - a.AccumulatedDep - MemorandumValue
	current = max(min(current, ceiling), 0)

	accumulated := a.AccumulatedDep + current
	return Row{
		AssetID:            a.ID,
		Name:               a.Name,
		AcquisitionDate:    a.AcquisitionDate.Format(model.DateFormat),
		AcquisitionCost:    a.AcquisitionCost,
		Method:             a.Method,
		UsefulLife:         a.UsefulLife,
		Rate:               a.Rate,
		MonthsUsed:         months,
		AnnualDep:          annual,
		AccumulatedDepPrev: a.AccumulatedDep,
		CurrentYearDep:     current,
		AccumulatedDepEnd:  accumulated,
		BookValueEnd:       a.AcquisitionCost - accumulated,
	}
}

// monthsUsed counts the months of use within year, acquisition month included.
func monthsUsed(a model.FixedAsset, year int) int {
	acqYear := a.AcquisitionDate.Year()
	switch {
	case acqYear > year:
		return 0
	case acqYear < year:
		return 12
	}
	switch a.Method {
	case model.StraightLine:
		return 13 - int(a.AcquisitionDate.Month())
	}
	return 12
}
