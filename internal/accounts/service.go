package accounts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byID     map[int64]model.Account
	byCode   map[int]model.Account
}

// NewService creates a Service from a slice of accounts, ordered by code.
func NewService(accounts []model.Account) *Service {
	sorted := slices.Clone(accounts)
	slices.SortStableFunc(sorted, func(a, b model.Account) int { return a.Code - b.Code })

	byID := make(map[int64]model.Account, len(sorted))
	byCode := make(map[int]model.Account, len(sorted))
	for _, a := range sorted {
		byID[a.ID] = a
		byCode[a.Code] = a
	}
	return &Service{accounts: sorted, byID: byID, byCode: byCode}
}

// All returns all accounts ordered by code.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id int64) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// ByCode returns an account by its code.
func (s *Service) ByCode(code int) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

// ByClassification returns all accounts of the given classification.
func (s *Service) ByClassification(c model.Classification) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Classification == c {
			result = append(result, a)
		}
	}
	return result
}

// ValidateNew checks a proposed account against the chart.
// The name is trimmed in the returned account.
func (s *Service) ValidateNew(acct model.Account) (model.Account, error) {
	if acct.Code <= 0 {
		return acct, fmt.Errorf("%w: %d", model.ErrInvalidCode, acct.Code)
	}
	acct.Name = strings.TrimSpace(acct.Name)
	if acct.Name == "" {
		return acct, model.ErrInvalidName
	}
	if !acct.Classification.Valid() {
		return acct, fmt.Errorf("%w: %d", model.ErrInvalidClassification, int(acct.Classification))
	}
	if existing, ok := s.byCode[acct.Code]; ok {
		return acct, fmt.Errorf("%w: %d (%s)", model.ErrDuplicateCode, acct.Code, existing.Name)
	}
	return acct, nil
}
