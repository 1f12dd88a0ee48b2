// Package rent computes the deductible share of rent contracts.
package rent

import (
	"fmt"
	"strings"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Row is one contract with its deductible amount.
type Row struct {
	model.RentDetail
	Deductible int64
}

// Allocation is the rent breakdown fed into the annual statement.
type Allocation struct {
	Rows  []Row
	Total int64
}

// Deductible returns floor(annual total x business ratio / 100).
func Deductible(r model.RentDetail) int64 {
	return r.AnnualTotal * int64(r.BusinessRatio) / 100
}

// Allocate sums the per-row deductible amounts. Each row is floored on its
// own; the total is not re-rounded.
func Allocate(details []model.RentDetail) Allocation {
	var a Allocation
	for _, d := range details {
		row := Row{RentDetail: d, Deductible: Deductible(d)}
		a.Rows = append(a.Rows, row)
		a.Total += row.Deductible
	}
	return a
}

// Validate checks a contract before it is stored. A zero annual total
// defaults to twelve months of rent.
func Validate(r model.RentDetail) (model.RentDetail, error) {
	r.PayeeName = strings.TrimSpace(r.PayeeName)
	if r.PayeeName == "" {
		return r, fmt.Errorf("%w: payee name is required", model.ErrInvalidRent)
	}
	if r.MonthlyRent < 0 || r.AnnualTotal < 0 {
		return r, fmt.Errorf("%w: amounts must not be negative", model.ErrInvalidRent)
	}
	if r.BusinessRatio < 1 || r.BusinessRatio > 100 {
		return r, fmt.Errorf("%w: business ratio %d must be between 1 and 100", model.ErrInvalidRent, r.BusinessRatio)
	}
	if r.AnnualTotal == 0 {
		r.AnnualTotal = r.MonthlyRent * 12
	}
	return r, nil
}
