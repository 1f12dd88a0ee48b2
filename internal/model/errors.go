package model

import "errors"

// Validation and referential errors. Callers match them with errors.Is.
var (
	ErrInvalidCode           = errors.New("account code must be positive")
	ErrInvalidName           = errors.New("name must not be blank")
	ErrDuplicateCode         = errors.New("account code already exists")
	ErrInvalidClassification = errors.New("unknown classification")

	ErrInvalidDate       = errors.New("invalid date")
	ErrMissingAccount    = errors.New("account does not exist")
	ErrSameAccount       = errors.New("debit and credit accounts are the same")
	ErrUnbalancedAmount  = errors.New("debit and credit amounts differ")
	ErrNonPositiveAmount = errors.New("amount must be at least 1 yen")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrInvalidAsset      = errors.New("invalid fixed asset")
	ErrUnsupportedMethod = errors.New("unsupported depreciation method")
	ErrInvalidRent       = errors.New("invalid rent detail")
	ErrInvalidLoss       = errors.New("invalid loss carryforward")
)
