package service

import (
	"github.com/localflow/localflow-backend/internal/analytics"
	"github.com/localflow/localflow-backend/internal/domain"
)

// StatsService computes derived statistics on top of the transaction store.
type StatsService struct {
	transactionRepo domain.TransactionRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(transactionRepo domain.TransactionRepository) *StatsService {
	return &StatsService{transactionRepo: transactionRepo}
}

// YearlyHighlights derives whole-year facts for a user. The computation spans
// every transaction of the year, independent of any dashboard date filter.
func (s *StatsService) YearlyHighlights(username string, year int) (*domain.YearlyHighlights, error) {
	transactions, err := s.transactionRepo.ListByYear(username, year)
	if err != nil {
		return nil, err
	}
	highlights := analytics.ComputeYearlyHighlights(transactions, year)
	return &highlights, nil
}
