package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RateScale is the fixed-point scale of depreciation rates (2000 = 0.200).
const RateScale = 10000

// DepreciationMethod selects how an asset is written down.
type DepreciationMethod string

const (
	// StraightLine is 定額法.
	StraightLine DepreciationMethod = "straight_line"
)

// ParseDepreciationMethod accepts the storage key or the Japanese label.
// An empty string means straight-line.
func ParseDepreciationMethod(s string) (DepreciationMethod, error) {
	switch strings.TrimSpace(s) {
	case "", string(StraightLine), "定額法":
		return StraightLine, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
}

// Label returns the name printed on the filing.
func (m DepreciationMethod) Label() string {
	switch m {
	case StraightLine:
		return "定額法"
	}
	return string(m)
}

// FixedAsset is a depreciable business asset.
type FixedAsset struct {
	ID              int64
	Name            string
	AcquisitionDate time.Time
	AcquisitionCost int64
	UsefulLife      int
	Method          DepreciationMethod
	Rate            int   // scaled by RateScale
	AccumulatedDep  int64 // as of the start of the reporting year
	Memo            string
	Active          bool
}

// ParseRate converts a decimal rate such as "0.334" into scaled form.
// Digits beyond the scale are rejected rather than rounded.
func ParseRate(s string) (int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing rate %q: %w", s, err)
	}
	scaled := d.Mul(decimal.NewFromInt(RateScale))
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("rate %q has more than 4 decimal places", s)
	}
	if scaled.IsNegative() || scaled.GreaterThan(decimal.NewFromInt(RateScale)) {
		return 0, fmt.Errorf("rate %q must be between 0 and 1", s)
	}
	return int(scaled.IntPart()), nil
}

// FormatRate renders a scaled rate with three decimals, as the filing does.
func FormatRate(rate int) string {
	return decimal.New(int64(rate), -4).StringFixed(3)
}
