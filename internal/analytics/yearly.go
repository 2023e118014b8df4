package analytics

import (
	"fmt"
	"strings"

	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeYearlyHighlights derives whole-year facts from the full transaction
// list, ignoring any active dashboard range: the day with the highest expense
// total, the day with the most transactions of any type, and the category
// with the highest expense total. Every field is nil when the year holds no
// qualifying data. Ties resolve to the earliest date or the alphabetically
// first category.
func ComputeYearlyHighlights(transactions []*domain.Transaction, year int) domain.YearlyHighlights {
	prefix := fmt.Sprintf("%04d-", year)

	spendByDay := make(map[string]decimal.Decimal)
	countByDay := make(map[string]int)
	spendByCategory := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if !strings.HasPrefix(t.Date, prefix) {
			continue
		}
		countByDay[t.Date]++
		if t.Type != domain.TransactionTypeExpense {
			continue
		}
		spendByDay[t.Date] = spendByDay[t.Date].Add(t.Amount)
		spendByCategory[t.Category] = spendByCategory[t.Category].Add(t.Amount)
	}

	var highlights domain.YearlyHighlights

	for date, amount := range spendByDay {
		best := highlights.HighestSpendingDay
		if best == nil || amount.GreaterThan(best.Amount) || (amount.Equal(best.Amount) && date < best.Date) {
			highlights.HighestSpendingDay = &domain.DayAmount{Date: date, Amount: amount}
		}
	}

	for date, count := range countByDay {
		best := highlights.MostFrequentDay
		if best == nil || count > best.Count || (count == best.Count && date < best.Date) {
			highlights.MostFrequentDay = &domain.DayCount{Date: date, Count: count}
		}
	}

	for category, amount := range spendByCategory {
		best := highlights.HighestCategory
		if best == nil || amount.GreaterThan(best.Amount) || (amount.Equal(best.Amount) && category < best.Category) {
			highlights.HighestCategory = &domain.CategoryAmount{Category: category, Amount: amount}
		}
	}

	return highlights
}
