package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// fakeAPI is an in-memory stand-in for the REST client.
type fakeAPI struct {
	transactions []*domain.Transaction
	nextID       int64

	listErr   error
	createErr error
	deleteErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 1}
}

func (f *fakeAPI) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Transaction, len(f.transactions))
	copy(out, f.transactions)
	return out, nil
}

func (f *fakeAPI) CreateTransaction(ctx context.Context, create *domain.TransactionCreate) (*domain.Transaction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	t := &domain.Transaction{
		ID:       f.nextID,
		Date:     create.Date,
		Amount:   create.Amount,
		Type:     create.Type,
		Category: create.Category,
		Note:     create.Note,
	}
	f.nextID++
	f.transactions = append(f.transactions, t)
	return t, nil
}

func (f *fakeAPI) DeleteTransaction(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

func (f *fakeAPI) add(date, category string, amount int64) *domain.Transaction {
	t := &domain.Transaction{
		ID:       f.nextID,
		Date:     date,
		Amount:   decimal.NewFromInt(amount),
		Type:     domain.TransactionTypeExpense,
		Category: category,
	}
	f.nextID++
	f.transactions = append(f.transactions, t)
	return t
}

func TestStore_Load_FromCollaborator(t *testing.T) {
	api := newFakeAPI()
	api.add("2024-05-10", "Food", 100)
	api.add("2024-05-11", "Transport", 50)
	s := New(api)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(s.Transactions()) != 2 {
		t.Errorf("Expected 2 transactions, got %d", len(s.Transactions()))
	}
	if s.Offline() {
		t.Error("Expected online mode after a successful load")
	}
}

func TestStore_Load_FallsBackToDemoData(t *testing.T) {
	api := newFakeAPI()
	api.listErr = fmt.Errorf("dial tcp: %w", domain.ErrUnavailable)
	s := New(api)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Degraded load must not fail, got %v", err)
	}

	if !s.Offline() {
		t.Error("Expected offline mode")
	}
	if len(s.Transactions()) != 4 {
		t.Errorf("Expected the 4 demo transactions, got %d", len(s.Transactions()))
	}
}

func TestStore_Load_RecoversAfterOutage(t *testing.T) {
	api := newFakeAPI()
	api.listErr = domain.ErrUnavailable
	s := New(api)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !s.Offline() {
		t.Fatal("Expected offline mode")
	}

	api.listErr = nil
	api.add("2024-05-10", "Food", 100)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if s.Offline() {
		t.Error("Expected online mode after recovery")
	}
	if len(s.Transactions()) != 1 {
		t.Errorf("Expected 1 transaction, got %d", len(s.Transactions()))
	}
}

func TestStore_Load_PropagatesCancellation(t *testing.T) {
	api := newFakeAPI()
	api.listErr = context.Canceled
	s := New(api)

	if err := s.Load(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestStore_Add_ReloadsFromCollaborator(t *testing.T) {
	api := newFakeAPI()
	s := New(api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	created, err := s.Add(context.Background(), &domain.TransactionCreate{
		Date:     "2024-05-10",
		Amount:   decimal.NewFromInt(150),
		Type:     domain.TransactionTypeExpense,
		Category: "Food",
		Note:     "Lunch",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created.ID != 1 {
		t.Errorf("Expected server-assigned ID 1, got %d", created.ID)
	}
	if len(s.Transactions()) != 1 {
		t.Errorf("Expected the reloaded list to hold 1 transaction, got %d", len(s.Transactions()))
	}
}

func TestStore_Add_OptimisticWhenUnreachable(t *testing.T) {
	api := newFakeAPI()
	api.add("2024-05-10", "Food", 100)
	s := New(api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	api.createErr = domain.ErrUnavailable
	created, err := s.Add(context.Background(), &domain.TransactionCreate{
		Date:     "2024-05-11",
		Amount:   decimal.NewFromInt(50),
		Type:     domain.TransactionTypeExpense,
		Category: "Transport",
	})
	if err != nil {
		t.Fatalf("Expected optimistic add to succeed, got %v", err)
	}

	if created.ID != 2 {
		t.Errorf("Expected synthetic ID 2 (one past the highest), got %d", created.ID)
	}
	if len(s.Transactions()) != 2 {
		t.Errorf("Expected 2 transactions locally, got %d", len(s.Transactions()))
	}
	if !s.Offline() {
		t.Error("Expected offline mode after a degraded add")
	}
}

func TestStore_Add_ValidationErrorsPropagate(t *testing.T) {
	api := newFakeAPI()
	api.createErr = domain.ErrInvalidAmount
	s := New(api)

	_, err := s.Add(context.Background(), &domain.TransactionCreate{
		Date:     "2024-05-11",
		Amount:   decimal.NewFromInt(50),
		Type:     domain.TransactionTypeExpense,
		Category: "Food",
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
	if len(s.Transactions()) != 0 {
		t.Error("A rejected create must not mutate the list")
	}
}

func TestStore_Add_RejectsInvalidRecordEvenOffline(t *testing.T) {
	api := newFakeAPI()
	api.createErr = domain.ErrUnavailable
	s := New(api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	before := len(s.Transactions())

	cases := []struct {
		name    string
		create  *domain.TransactionCreate
		wantErr error
	}{
		{
			"unknown type",
			&domain.TransactionCreate{Date: "2024-05-11", Amount: decimal.NewFromInt(10), Type: domain.TransactionType("banana"), Category: "Food"},
			domain.ErrInvalidType,
		},
		{
			"malformed date",
			&domain.TransactionCreate{Date: "11/05/2024", Amount: decimal.NewFromInt(10), Type: domain.TransactionTypeExpense, Category: "Food"},
			domain.ErrInvalidDate,
		},
		{
			"non-positive amount",
			&domain.TransactionCreate{Date: "2024-05-11", Amount: decimal.Zero, Type: domain.TransactionTypeExpense, Category: "Food"},
			domain.ErrInvalidAmount,
		},
		{
			"blank category",
			&domain.TransactionCreate{Date: "2024-05-11", Amount: decimal.NewFromInt(10), Type: domain.TransactionTypeExpense, Category: "  "},
			domain.ErrCategoryRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Add(context.Background(), tc.create)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	// The degraded local list must not have picked up any rejected record.
	if len(s.Transactions()) != before {
		t.Errorf("Rejected submissions must not reach the working list, got %d records", len(s.Transactions()))
	}
}

func TestStore_Remove_UnknownIDIsNoOp(t *testing.T) {
	api := newFakeAPI()
	api.add("2024-05-10", "Food", 100)
	s := New(api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err := s.Remove(context.Background(), 999)
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound, got %v", err)
	}
	if len(s.Transactions()) != 1 {
		t.Error("An unknown ID must leave the list untouched")
	}
}

func TestStore_Remove_OptimisticWhenUnreachable(t *testing.T) {
	api := newFakeAPI()
	keep := api.add("2024-05-10", "Food", 100)
	drop := api.add("2024-05-11", "Transport", 50)
	s := New(api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	api.deleteErr = domain.ErrUnavailable
	if err := s.Remove(context.Background(), drop.ID); err != nil {
		t.Fatalf("Expected optimistic remove to succeed, got %v", err)
	}

	if len(s.Transactions()) != 1 {
		t.Fatalf("Expected 1 transaction after remove, got %d", len(s.Transactions()))
	}
	if s.Transactions()[0].ID != keep.ID {
		t.Errorf("Wrong transaction removed, kept ID %d", s.Transactions()[0].ID)
	}
	if !s.Offline() {
		t.Error("Expected offline mode after a degraded remove")
	}
}

func TestStore_Categories_SeedThenSortedExtras(t *testing.T) {
	api := newFakeAPI()
	api.add("2024-05-10", "Zebra Fund", 10)
	api.add("2024-05-11", "Aquarium", 10)
	s := New(api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	s.AddCategory("Midway")
	s.AddCategory("Food") // already in the seed set

	categories := s.Categories()

	seedLen := len(domain.SeedCategories)
	if len(categories) != seedLen+3 {
		t.Fatalf("Expected %d categories, got %d", seedLen+3, len(categories))
	}
	for i, c := range domain.SeedCategories {
		if categories[i] != c {
			t.Fatalf("Seed category %d: expected %s, got %s", i, c, categories[i])
		}
	}
	extras := categories[seedLen:]
	if extras[0] != "Aquarium" || extras[1] != "Midway" || extras[2] != "Zebra Fund" {
		t.Errorf("Expected sorted extras [Aquarium Midway Zebra Fund], got %v", extras)
	}
}

func TestDemoTransactions_DatesTrackNow(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	demo := DemoTransactions(now)

	if len(demo) != 4 {
		t.Fatalf("Expected 4 demo transactions, got %d", len(demo))
	}
	if demo[0].Date != "2024-05-15" || demo[2].Date != "2024-05-14" || demo[3].Date != "2024-05-13" {
		t.Errorf("Demo dates must be today/yesterday/two days ago, got %s %s %s", demo[0].Date, demo[2].Date, demo[3].Date)
	}
}
