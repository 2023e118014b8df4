package service

import (
	"strings"

	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// CreateTransaction validates and stores a new transaction. Validation
// failures block the write entirely; there are no partial submissions.
func (s *TransactionService) CreateTransaction(username string, create *domain.TransactionCreate) (*domain.Transaction, error) {
	if create.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidDate(create.Date) {
		return nil, domain.ErrInvalidDate
	}
	if create.Type != domain.TransactionTypeIncome && create.Type != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidType
	}

	category := strings.TrimSpace(create.Category)
	if category == "" {
		return nil, domain.ErrCategoryRequired
	}
	if len(category) > domain.MaxCategoryLength {
		return nil, domain.ErrCategoryTooLong
	}

	note := strings.TrimSpace(create.Note)
	if len(note) > domain.MaxNoteLength {
		return nil, domain.ErrNoteTooLong
	}

	return s.transactionRepo.Create(username, &domain.TransactionCreate{
		Date:     create.Date,
		Amount:   create.Amount,
		Type:     create.Type,
		Category: category,
		Note:     note,
	})
}

// GetTransactions retrieves transactions with optional filters and pagination
func (s *TransactionService) GetTransactions(username string, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.List(username, filters)
}

// DeleteTransaction removes a transaction by ID. Deleting an unknown ID
// reports ErrTransactionNotFound and leaves the remaining records untouched.
func (s *TransactionService) DeleteTransaction(username string, id int64) error {
	return s.transactionRepo.Delete(username, id)
}
