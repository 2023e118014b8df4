package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/localflow/localflow-backend/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create inserts a new transaction and returns it with its assigned ID.
func (r *TransactionRepository) Create(username string, create *domain.TransactionCreate) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(create.Amount)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(create.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	pgDate := pgtype.Date{Time: date, Valid: true}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (username, date, amount, type, category, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date, amount, type, category, note`,
		username, pgDate, amount, string(create.Type), create.Category, create.Note)

	return scanTransaction(row)
}

// List retrieves transactions for a username scope with optional filters and
// pagination, in store (insertion) order.
func (r *TransactionRepository) List(username string, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	ctx := context.Background()

	query := `SELECT id, date, amount, type, category, note FROM transactions WHERE username = $1`
	args := []any{username}

	if filters != nil {
		if filters.StartDate != "" {
			args = append(args, filters.StartDate)
			query += fmt.Sprintf(" AND date >= $%d", len(args))
		}
		if filters.EndDate != "" {
			args = append(args, filters.EndDate)
			query += fmt.Sprintf(" AND date <= $%d", len(args))
		}
		if filters.Type != nil {
			args = append(args, string(*filters.Type))
			query += fmt.Sprintf(" AND type = $%d", len(args))
		}
	}

	query += " ORDER BY id"

	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
			if pageSize > domain.MaxPageSize {
				pageSize = domain.MaxPageSize
			}
		}
	}
	args = append(args, pageSize)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, listOffset(page, pageSize))
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListByYear retrieves every transaction whose date falls inside the given
// calendar year, ignoring pagination.
func (r *TransactionRepository) ListByYear(username string, year int) ([]*domain.Transaction, error) {
	ctx := context.Background()

	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)

	rows, err := r.pool.Query(ctx, `
		SELECT id, date, amount, type, category, note
		FROM transactions
		WHERE username = $1 AND date >= $2 AND date <= $3
		ORDER BY id`,
		username, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Delete removes a transaction by ID within a username scope.
func (r *TransactionRepository) Delete(username string, id int64) error {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE username = $1 AND id = $2`, username, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// listOffset computes the row offset in 64-bit space so large page numbers
// cannot wrap negative.
func listOffset(page, pageSize int32) int64 {
	return int64(page-1) * int64(pageSize)
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	transactions := []*domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t      domain.Transaction
		date   pgtype.Date
		amount pgtype.Numeric
		typ    string
	)
	if err := row.Scan(&t.ID, &date, &amount, &typ, &t.Category, &t.Note); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	t.Date = date.Time.Format(domain.DateLayout)
	t.Type = domain.TransactionType(typ)

	dec, err := pgNumericToDecimal(amount)
	if err != nil {
		return nil, err
	}
	t.Amount = dec

	return &t, nil
}
