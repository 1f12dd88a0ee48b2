package model

// Snapshot is one consistent view of every register in the book.
type Snapshot struct {
	Accounts []Account
	Entries  []JournalEntry // ordered by date, then id
	Assets   []FixedAsset
	Rents    []RentDetail
	Losses   []LossCarryforward
}

// AccountByID indexes the accounts by id.
func (s Snapshot) AccountByID() map[int64]Account {
	m := make(map[int64]Account, len(s.Accounts))
	for _, a := range s.Accounts {
		m[a.ID] = a
	}
	return m
}
