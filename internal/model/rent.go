package model

// RentDetail is one line of the rent breakdown (地代家賃の内訳).
type RentDetail struct {
	ID            int64
	PayeeAddress  string
	PayeeName     string
	RentType      string
	MonthlyRent   int64
	AnnualTotal   int64
	BusinessRatio int // percent, 1-100
	Memo          string
}
