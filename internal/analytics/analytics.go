package analytics

import (
	"sort"

	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CategoryAll is the trend category filter that matches every expense
// category.
const CategoryAll = "All"

// ComputeStats accumulates the headline totals in a single pass. today is the
// current calendar day in YYYY-MM-DD form; balance is derived from the two
// totals at the end so the three figures can never drift apart.
func ComputeStats(transactions []*domain.Transaction, today string) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		TodayExpense: decimal.Zero,
	}
	for _, t := range transactions {
		if t.Type == domain.TransactionTypeIncome {
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
			continue
		}
		stats.TotalExpense = stats.TotalExpense.Add(t.Amount)
		if t.Date == today {
			stats.TodayExpense = stats.TodayExpense.Add(t.Amount)
		}
	}
	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpense)
	return stats
}

// ComputeCategoryTotals groups expense transactions by category and sums their
// amounts, sorted by descending amount. Ties sort alphabetically by category
// so the output is deterministic.
func ComputeCategoryTotals(transactions []*domain.Transaction) []domain.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.TransactionTypeExpense {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	totals := make([]domain.CategoryTotal, 0, len(sums))
	for category, amount := range sums {
		totals = append(totals, domain.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// ComputeDailyTrend builds the expense series for every calendar day of the
// range, inclusive. Days without spending appear as zero-valued points so
// chart consumers see a gapless sequence. categoryFilter narrows the series
// to one expense category; CategoryAll (or the empty string) matches all.
// Transactions dated outside the range are skipped even if present in the
// input. An inverted range yields an empty series.
func ComputeDailyTrend(transactions []*domain.Transaction, r domain.DateRange, categoryFilter string) ([]domain.DailyTrendPoint, error) {
	start, err := domain.ParseDate(r.Start)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	end, err := domain.ParseDate(r.End)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	points := []domain.DailyTrendPoint{}
	index := make(map[string]int)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(domain.DateLayout)
		index[key] = len(points)
		points = append(points, domain.DailyTrendPoint{Date: key, Amount: decimal.Zero})
	}

	for _, t := range transactions {
		if t.Type != domain.TransactionTypeExpense {
			continue
		}
		if categoryFilter != "" && categoryFilter != CategoryAll && t.Category != categoryFilter {
			continue
		}
		i, ok := index[t.Date]
		if !ok {
			continue
		}
		points[i].Amount = points[i].Amount.Add(t.Amount)
	}
	return points, nil
}
