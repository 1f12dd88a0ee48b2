package model

import (
	"fmt"
	"time"
)

// Period selects a fiscal year, optionally narrowed to one month.
type Period struct {
	Year  int
	Month int // 0 = whole year
}

// Year returns the whole-year period.
func Year(y int) Period {
	return Period{Year: y}
}

// Month returns a one-month period.
func Month(y, m int) Period {
	return Period{Year: y, Month: m}
}

// Validate checks the year and month ranges.
func (p Period) Validate() error {
	if p.Year <= 0 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	if p.Month < 0 || p.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	return nil
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	if t.Year() != p.Year {
		return false
	}
	return p.Month == 0 || int(t.Month()) == p.Month
}

func (p Period) String() string {
	if p.Month == 0 {
		return fmt.Sprintf("%04d", p.Year)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
