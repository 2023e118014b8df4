package domain

import "github.com/shopspring/decimal"

// DashboardStats is the headline summary over a filtered transaction set.
// Balance is always derived as totalIncome - totalExpense, never accumulated
// on its own.
type DashboardStats struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	TodayExpense decimal.Decimal `json:"todayExpense"`
}

// CategoryTotal is a summed expense amount for one category, ordered by
// descending amount for display.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DailyTrendPoint is one calendar day of the trend series. Every day of the
// active range appears exactly once, zero-valued when nothing was spent.
type DailyTrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DayAmount pairs a calendar date with an expense total.
type DayAmount struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DayCount pairs a calendar date with a transaction count.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CategoryAmount pairs a category with an expense total.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// YearlyHighlights holds whole-year derived facts, computed over every
// transaction of the year regardless of the active dashboard range. Each
// field is nil when the year has no qualifying data.
type YearlyHighlights struct {
	HighestSpendingDay *DayAmount      `json:"highest_spending_day"`
	MostFrequentDay    *DayCount       `json:"most_frequent_day"`
	HighestCategory    *CategoryAmount `json:"highest_category"`
}
