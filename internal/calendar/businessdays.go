package calendar

import (
	"fmt"
	"time"

	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
)

// Window is an inclusive [Start, End] date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// IsBusinessDay reports whether d falls on Monday through Friday.
// Holidays are not modeled.
func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// ResolveWindow walks backward day by day from reference (inclusive),
// skipping weekends, until businessDays business days have been collected.
// End is always the reference date; Start is the earliest counted day.
func ResolveWindow(reference time.Time, businessDays int) (Window, error) {
	if businessDays <= 0 {
		return Window{}, fmt.Errorf("business day count must be positive, got %d: %w", businessDays, apperrors.ErrInvalidArgument)
	}

	day := truncateToDate(reference)
	end := day
	counted := 0
	start := day
	for counted < businessDays {
		if IsBusinessDay(day) {
			counted++
			start = day
		}
		if counted < businessDays {
			day = day.AddDate(0, 0, -1)
		}
	}
	return Window{Start: start, End: end}, nil
}

// Contains reports whether d (compared by date, not instant) falls inside w.
func (w Window) Contains(d time.Time) bool {
	day := truncateToDate(d)
	return !day.Before(w.Start) && !day.After(w.End)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
