package model

import "time"

// DateFormat is the on-disk and CLI date layout.
const DateFormat = "2006-01-02"

// JournalEntry is one balanced debit/credit pair.
type JournalEntry struct {
	ID              int64
	Date            time.Time
	DebitAccountID  int64
	DebitAmount     int64
	CreditAccountID int64
	CreditAmount    int64
	Description     string
	CreatedAt       time.Time

	// Filled on reads for display; ignored on writes.
	DebitAccountName  string
	CreditAccountName string
}

// Amount returns the entry amount. Only meaningful for validated entries.
func (e JournalEntry) Amount() int64 {
	return e.DebitAmount
}

// Touches reports whether the entry posts to the account on either side.
func (e JournalEntry) Touches(accountID int64) bool {
	return e.DebitAccountID == accountID || e.CreditAccountID == accountID
}
