package daterange

import (
	"time"

	"github.com/localflow/localflow-backend/internal/domain"
)

// Selection tracks the active date window together with the preset that
// produced it, if any. Preset mode and manual mode are mutually exclusive:
// applying a preset overwrites both bounds, and editing either bound by hand
// drops the preset tag.
type Selection struct {
	Range  domain.DateRange
	Preset domain.Preset // empty when the bounds were set manually
}

// DefaultSelection is the dashboard's starting window: the first of the
// current month through today.
func DefaultSelection(now time.Time) Selection {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Selection{
		Range: domain.DateRange{
			Start: first.Format(domain.DateLayout),
			End:   now.Format(domain.DateLayout),
		},
	}
}

// ApplyPreset resolves the preset at now and replaces both bounds.
func (s *Selection) ApplyPreset(preset domain.Preset, now time.Time) error {
	r, err := Resolve(preset, now)
	if err != nil {
		return err
	}
	s.Range = r
	s.Preset = preset
	return nil
}

// SetStart replaces the lower bound and switches to manual mode.
func (s *Selection) SetStart(date string) error {
	if !domain.ValidDate(date) {
		return domain.ErrInvalidDate
	}
	s.Range.Start = date
	s.Preset = ""
	return nil
}

// SetEnd replaces the upper bound and switches to manual mode.
func (s *Selection) SetEnd(date string) error {
	if !domain.ValidDate(date) {
		return domain.ErrInvalidDate
	}
	s.Range.End = date
	s.Preset = ""
	return nil
}
