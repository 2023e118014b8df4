// Package daterange narrows transaction lists to inclusive calendar-date
// windows and resolves named presets against a reference "now".
package daterange

import (
	"time"

	"github.com/localflow/localflow-backend/internal/domain"
)

// allTimeEpoch is the fixed start of the all-time preset.
const allTimeEpoch = "2000-01-01"

// FilterByRange selects transactions with r.Start <= date <= r.End. Dates are
// fixed-width ISO strings, so string comparison is calendar comparison. An
// inverted range matches nothing.
func FilterByRange(transactions []*domain.Transaction, r domain.DateRange) []*domain.Transaction {
	filtered := make([]*domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date >= r.Start && t.Date <= r.End {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Resolve computes the concrete date range for a preset at the given instant.
func Resolve(preset domain.Preset, now time.Time) (domain.DateRange, error) {
	today := now.Format(domain.DateLayout)

	switch preset {
	case domain.PresetLastWeek:
		return domain.DateRange{Start: now.AddDate(0, 0, -7).Format(domain.DateLayout), End: today}, nil
	case domain.PresetLastMonth:
		return domain.DateRange{Start: monthsBefore(now, 1).Format(domain.DateLayout), End: today}, nil
	case domain.PresetLast3Months:
		return domain.DateRange{Start: monthsBefore(now, 3).Format(domain.DateLayout), End: today}, nil
	case domain.PresetLast6Months:
		return domain.DateRange{Start: monthsBefore(now, 6).Format(domain.DateLayout), End: today}, nil
	case domain.PresetLastYear:
		return domain.DateRange{Start: monthsBefore(now, 12).Format(domain.DateLayout), End: today}, nil
	case domain.PresetPreviousWeek:
		monday := startOfWeek(now).AddDate(0, 0, -7)
		sunday := monday.AddDate(0, 0, 6)
		return domain.DateRange{Start: monday.Format(domain.DateLayout), End: sunday.Format(domain.DateLayout)}, nil
	case domain.PresetPreviousMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		last := first.AddDate(0, 1, -1)
		return domain.DateRange{Start: first.Format(domain.DateLayout), End: last.Format(domain.DateLayout)}, nil
	case domain.PresetAllTime:
		return domain.DateRange{Start: allTimeEpoch, End: today}, nil
	}
	return domain.DateRange{}, domain.ErrInvalidDate
}

// monthsBefore subtracts whole calendar months, clamping the day to the
// target month's length (Mar 31 minus one month is Feb 28/29, never Mar 3).
func monthsBefore(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) - months
	y := year
	for m < 1 {
		m += 12
		y--
	}
	lastDay := time.Date(y, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday of t's calendar week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}
