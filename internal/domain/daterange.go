package domain

// DateRange is a pair of inclusive calendar-date bounds. start <= end is
// expected but not enforced; filtering an inverted range yields no rows.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Preset names a rule that maps "now" to a concrete date range. Selecting a
// preset overwrites both bounds; editing either bound manually clears the
// active preset.
type Preset string

const (
	PresetLastWeek      Preset = "last-week"
	PresetLastMonth     Preset = "last-month"
	PresetLast3Months   Preset = "last-3-months"
	PresetLast6Months   Preset = "last-6-months"
	PresetLastYear      Preset = "last-year"
	PresetPreviousWeek  Preset = "previous-week"
	PresetPreviousMonth Preset = "previous-month"
	PresetAllTime       Preset = "all-time"
)
