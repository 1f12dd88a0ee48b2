package model

import (
	"fmt"
	"strings"
)

// Classification places an account on a statement and fixes its normal side.
type Classification int

const (
	Asset Classification = iota + 1
	Liability
	Equity
	Revenue
	Expense
)

// Classifications lists every classification in statement order.
var Classifications = []Classification{Asset, Liability, Equity, Revenue, Expense}

var classificationNames = map[Classification][2]string{
	Asset:     {"asset", "資産"},
	Liability: {"liability", "負債"},
	Equity:    {"equity", "純資産"},
	Revenue:   {"revenue", "収益"},
	Expense:   {"expense", "費用"},
}

// ParseClassification accepts the English key or the Japanese label.
func ParseClassification(s string) (Classification, error) {
	s = strings.TrimSpace(s)
	for c, names := range classificationNames {
		if strings.EqualFold(s, names[0]) || s == names[1] {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidClassification, s)
}

// String returns the storage key ("asset", "revenue", ...).
func (c Classification) String() string {
	if names, ok := classificationNames[c]; ok {
		return names[0]
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

// Label returns the Japanese label used on the filing.
func (c Classification) Label() string {
	if names, ok := classificationNames[c]; ok {
		return names[1]
	}
	return c.String()
}

// Valid reports whether c is one of the five classifications.
func (c Classification) Valid() bool {
	_, ok := classificationNames[c]
	return ok
}

// DebitNormal reports whether the account's balance grows on the debit side.
func (c Classification) DebitNormal() bool {
	switch c {
	case Asset, Expense:
		return true
	case Liability, Equity, Revenue:
		return false
	}
	panic(fmt.Sprintf("model: unknown classification %d", int(c)))
}

// Balance applies the sign rule to period totals.
func (c Classification) Balance(debit, credit int64) int64 {
	if c.DebitNormal() {
		return debit - credit
	}
	return credit - debit
}

// OnBalanceSheet reports whether the account is carried cumulatively.
func (c Classification) OnBalanceSheet() bool {
	switch c {
	case Asset, Liability, Equity:
		return true
	case Revenue, Expense:
		return false
	}
	panic(fmt.Sprintf("model: unknown classification %d", int(c)))
}

// Account is one line in the chart of accounts.
type Account struct {
	ID             int64
	Code           int
	Name           string
	Classification Classification
}
