package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/localflow/localflow-backend/internal/domain"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[string][]*domain.Transaction
	NextID       int64
	CreateErr    error
	ListErr      error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[string][]*domain.Transaction),
		NextID:       1,
	}
}

// Create stores a new transaction under the username scope
func (m *MockTransactionRepository) Create(username string, create *domain.TransactionCreate) (*domain.Transaction, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	transaction := &domain.Transaction{
		ID:       m.NextID,
		Date:     create.Date,
		Amount:   create.Amount,
		Type:     create.Type,
		Category: create.Category,
		Note:     create.Note,
	}
	m.NextID++
	m.Transactions[username] = append(m.Transactions[username], transaction)
	return transaction, nil
}

// List retrieves transactions matching the filters
func (m *MockTransactionRepository) List(username string, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	matched := []*domain.Transaction{}
	for _, t := range m.Transactions[username] {
		if filters != nil {
			if filters.StartDate != "" && t.Date < filters.StartDate {
				continue
			}
			if filters.EndDate != "" && t.Date > filters.EndDate {
				continue
			}
			if filters.Type != nil && t.Type != *filters.Type {
				continue
			}
		}
		matched = append(matched, t)
	}

	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
		}
	}
	start := int((page - 1) * pageSize)
	if start >= len(matched) {
		return []*domain.Transaction{}, nil
	}
	end := start + int(pageSize)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

// ListByYear retrieves transactions whose date falls inside the given year
func (m *MockTransactionRepository) ListByYear(username string, year int) ([]*domain.Transaction, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	prefix := fmt.Sprintf("%04d-", year)
	matched := []*domain.Transaction{}
	for _, t := range m.Transactions[username] {
		if strings.HasPrefix(t.Date, prefix) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Delete removes a transaction by ID
func (m *MockTransactionRepository) Delete(username string, id int64) error {
	list := m.Transactions[username]
	for i, t := range list {
		if t.ID == id {
			m.Transactions[username] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(username string, transaction *domain.Transaction) {
	if transaction.ID >= m.NextID {
		m.NextID = transaction.ID + 1
	}
	m.Transactions[username] = append(m.Transactions[username], transaction)
}

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users map[string]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*domain.User)}
}

// Create stores a new user, enforcing username uniqueness
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if _, ok := m.Users[user.Username]; ok {
		return nil, domain.ErrUsernameTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	m.Users[user.Username] = user
	return user, nil
}

// GetByUsername retrieves a user by username
func (m *MockUserRepository) GetByUsername(username string) (*domain.User, error) {
	if user, ok := m.Users[username]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}
