// Package store owns the client's authoritative transaction list. It loads
// from the REST collaborator and degrades to a built-in demo dataset or to
// optimistic local mutations when the collaborator is unreachable, so the
// dashboard stays usable offline.
//
// A Store is owned by a single goroutine (the UI/event loop); it performs no
// locking of its own.
package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// API is the collaborator surface the store depends on.
type API interface {
	ListTransactions(ctx context.Context) ([]*domain.Transaction, error)
	CreateTransaction(ctx context.Context, create *domain.TransactionCreate) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// Store holds the working transaction list and the session's category set.
type Store struct {
	api          API
	transactions []*domain.Transaction
	extraCats    []string
	offline      bool
	loadSeq      uint64
}

// New creates a Store backed by the given collaborator client.
func New(api API) *Store {
	return &Store{api: api}
}

// Load refreshes the list from the collaborator. On failure it installs the
// demo dataset instead; degraded mode is a usable state, not an error, so
// Load only fails on context cancellation. Overlapping loads resolve to the
// most recently started one; stale completions are dropped.
func (s *Store) Load(ctx context.Context) error {
	s.loadSeq++
	seq := s.loadSeq

	transactions, err := s.api.ListTransactions(ctx)
	if seq != s.loadSeq {
		log.Debug().Uint64("seq", seq).Msg("Dropping stale load result")
		return nil
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		log.Warn().Err(err).Msg("Collaborator not reachable, using demo data")
		s.transactions = DemoTransactions(time.Now())
		s.offline = true
		return nil
	}

	s.transactions = transactions
	s.offline = false
	return nil
}

// Add submits a transaction. When the collaborator accepts it the store does
// a full reload rather than patching in place; when the collaborator is
// unreachable the record is kept locally with a synthetic ID so the list
// stays internally consistent. Submissions are validated up front so the
// optimistic path can never install a record the collaborator would reject.
func (s *Store) Add(ctx context.Context, create *domain.TransactionCreate) (*domain.Transaction, error) {
	if err := validateCreate(create); err != nil {
		return nil, err
	}

	created, err := s.api.CreateTransaction(ctx, create)
	if err != nil {
		if !errors.Is(err, domain.ErrUnavailable) {
			return nil, err
		}
		log.Warn().Err(err).Msg("Create failed, applying optimistic local mutation")
		created = &domain.Transaction{
			ID:       s.nextLocalID(),
			Date:     create.Date,
			Amount:   create.Amount,
			Type:     create.Type,
			Category: create.Category,
			Note:     create.Note,
		}
		s.transactions = append(s.transactions, created)
		s.offline = true
		return created, nil
	}

	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// Remove deletes a transaction by ID. An unknown ID is reported as
// ErrTransactionNotFound and leaves the list untouched.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if !s.contains(id) {
		return domain.ErrTransactionNotFound
	}

	if err := s.api.DeleteTransaction(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrUnavailable) {
			return err
		}
		log.Warn().Err(err).Msg("Delete failed, applying optimistic local mutation")
		kept := s.transactions[:0]
		for _, t := range s.transactions {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		s.transactions = kept
		s.offline = true
		return nil
	}

	return s.Load(ctx)
}

// Transactions returns the current working list.
func (s *Store) Transactions() []*domain.Transaction {
	return s.transactions
}

// Offline reports whether the store is running on degraded local data.
func (s *Store) Offline() bool {
	return s.offline
}

// AddCategory records an ad-hoc category for the rest of the session.
func (s *Store) AddCategory(category string) {
	for _, c := range s.Categories() {
		if c == category {
			return
		}
	}
	s.extraCats = append(s.extraCats, category)
}

// Categories returns the union of the seed set, categories seen on loaded
// transactions, and ad-hoc additions. Seed categories keep their order;
// the rest sort alphabetically after them.
func (s *Store) Categories() []string {
	seen := make(map[string]bool, len(domain.SeedCategories))
	categories := make([]string, 0, len(domain.SeedCategories))
	for _, c := range domain.SeedCategories {
		seen[c] = true
		categories = append(categories, c)
	}

	var extra []string
	for _, t := range s.transactions {
		if !seen[t.Category] {
			seen[t.Category] = true
			extra = append(extra, t.Category)
		}
	}
	for _, c := range s.extraCats {
		if !seen[c] {
			seen[c] = true
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return append(categories, extra...)
}

// validateCreate mirrors the collaborator's submission checks.
func validateCreate(create *domain.TransactionCreate) error {
	if create.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if !domain.ValidDate(create.Date) {
		return domain.ErrInvalidDate
	}
	if create.Type != domain.TransactionTypeIncome && create.Type != domain.TransactionTypeExpense {
		return domain.ErrInvalidType
	}
	if strings.TrimSpace(create.Category) == "" {
		return domain.ErrCategoryRequired
	}
	return nil
}

func (s *Store) contains(id int64) bool {
	for _, t := range s.transactions {
		if t.ID == id {
			return true
		}
	}
	return false
}

// nextLocalID assigns a synthetic ID one past the highest in the store.
func (s *Store) nextLocalID() int64 {
	var max int64
	for _, t := range s.transactions {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
