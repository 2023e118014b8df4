package store

import (
	"time"

	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// DemoTransactions is the built-in fallback dataset installed when the
// collaborator cannot be reached. Dates are relative to now so the demo
// dashboard always shows recent activity.
func DemoTransactions(now time.Time) []*domain.Transaction {
	today := now.Format(domain.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(domain.DateLayout)
	twoDaysAgo := now.AddDate(0, 0, -2).Format(domain.DateLayout)

	return []*domain.Transaction{
		{ID: 1, Date: today, Amount: decimal.NewFromInt(150), Type: domain.TransactionTypeExpense, Category: "Food", Note: "Lunch"},
		{ID: 2, Date: today, Amount: decimal.NewFromInt(5000), Type: domain.TransactionTypeIncome, Category: "Salary", Note: "Freelance"},
		{ID: 3, Date: yesterday, Amount: decimal.NewFromInt(1200), Type: domain.TransactionTypeExpense, Category: "Transport", Note: "Gas"},
		{ID: 4, Date: twoDaysAgo, Amount: decimal.NewFromInt(300), Type: domain.TransactionTypeExpense, Category: "Entertainment", Note: "Movie"},
	}
}
