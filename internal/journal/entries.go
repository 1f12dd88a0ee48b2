package journal

import (
	"iter"
	"slices"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Sort orders entries by date, ties broken by id (insertion order).
func Sort(entries []model.JournalEntry) {
	slices.SortStableFunc(entries, compare)
}

func compare(a, b model.JournalEntry) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// Entries yields the entries dated within p, in ledger order.
// The sequence is restartable; each range re-reads the backing slice.
func Entries(entries []model.JournalEntry, p model.Period) iter.Seq[model.JournalEntry] {
	ordered := entries
	if !slices.IsSortedFunc(entries, compare) {
		ordered = slices.Clone(entries)
		Sort(ordered)
	}
	return func(yield func(model.JournalEntry) bool) {
		for _, e := range ordered {
			if !p.Contains(e.Date) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Through yields every entry dated on or before the last day of year.
func Through(entries []model.JournalEntry, year int) iter.Seq[model.JournalEntry] {
	return func(yield func(model.JournalEntry) bool) {
		for _, e := range entries {
			if e.Date.Year() > year {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
