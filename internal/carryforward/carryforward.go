// Package carryforward applies net operating losses from the three prior
// years against current income (純損失の繰越控除), oldest loss first.
package carryforward

import (
	"fmt"
	"slices"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Applied is the outcome for one loss record.
type Applied struct {
	LossID          int64
	LossYear        int
	Slot            int // 1-3: which following year this is
	OriginalLoss    int64
	AlreadyUsed     int64 // in slots other than Slot
	AppliedThisYear int64
	Remaining       int64
}

// Summary is the simulated deduction for one year.
type Summary struct {
	Year         int
	Rows         []Applied
	TotalApplied int64
	IncomeBefore int64
	IncomeAfter  int64
}

// Slot returns which following year of lossYear the given year is, and
// whether the loss may still be used then.
func Slot(year, lossYear int) (int, bool) {
	n := year - lossYear
	return n, n >= 1 && n <= model.CarryforwardYears
}

// Summarize simulates the deduction for year against income. It never
// modifies the records. The slot for year is excluded from the amount
// already used, so simulating again after Usage has been stored yields the
// same result.
func Summarize(losses []model.LossCarryforward, year int, income int64) Summary {
	s := Summary{Year: year, IncomeBefore: income, IncomeAfter: income}
	if income <= 0 {
		return s
	}

	eligible := make([]model.LossCarryforward, 0, len(losses))
	for _, l := range losses {
		if _, ok := Slot(year, l.LossYear); ok {
			eligible = append(eligible, l)
		}
	}
	slices.SortStableFunc(eligible, func(a, b model.LossCarryforward) int {
		if a.LossYear != b.LossYear {
			return a.LossYear - b.LossYear
		}
		return int(a.ID - b.ID)
	})

	left := income
	for _, l := range eligible {
		slot, _ := Slot(year, l.LossYear)
		used := l.Used() - l.Slot(slot)
		available := max(l.LossAmount-used, 0)
		apply := min(available, left)
		left -= apply
		s.TotalApplied += apply
		s.Rows = append(s.Rows, Applied{
			LossID:          l.ID,
			LossYear:        l.LossYear,
			Slot:            slot,
			OriginalLoss:    l.LossAmount,
			AlreadyUsed:     used,
			AppliedThisYear: apply,
			Remaining:       available - apply,
		})
	}
	s.IncomeAfter = income - s.TotalApplied
	return s
}

// Usage returns the records from losses updated with the summary's amounts
// written into their slots. Only records that appear in the summary are
// returned.
func Usage(losses []model.LossCarryforward, s Summary) []model.LossCarryforward {
	applied := make(map[int64]Applied, len(s.Rows))
	for _, r := range s.Rows {
		applied[r.LossID] = r
	}
	var out []model.LossCarryforward
	for _, l := range losses {
		r, ok := applied[l.ID]
		if !ok {
			continue
		}
		out = append(out, l.WithSlot(r.Slot, r.AppliedThisYear))
	}
	return out
}

// Clear returns the eligible records for year with that year's slot reset to
// zero. Committing a year with no income uses it so a stale deduction does
// not linger.
func Clear(losses []model.LossCarryforward, year int) []model.LossCarryforward {
	var out []model.LossCarryforward
	for _, l := range losses {
		if slot, ok := Slot(year, l.LossYear); ok && l.Slot(slot) != 0 {
			out = append(out, l.WithSlot(slot, 0))
		}
	}
	return out
}

// Validate checks a new loss record.
func Validate(l model.LossCarryforward) error {
	if l.LossYear <= 0 {
		return fmt.Errorf("%w: loss year %d", model.ErrInvalidLoss, l.LossYear)
	}
	if l.LossAmount <= 0 {
		return fmt.Errorf("%w: loss amount %d must be positive", model.ErrInvalidLoss, l.LossAmount)
	}
	return ValidateUsage(l)
}

// ValidateUsage checks the slots are non-negative and within the loss amount.
func ValidateUsage(l model.LossCarryforward) error {
	if l.UsedYear1 < 0 || l.UsedYear2 < 0 || l.UsedYear3 < 0 {
		return fmt.Errorf("%w: usage must not be negative", model.ErrInvalidLoss)
	}
	if l.Used() > l.LossAmount {
		return fmt.Errorf("%w: usage %d exceeds loss %d", model.ErrInvalidLoss, l.Used(), l.LossAmount)
	}
	return nil
}
