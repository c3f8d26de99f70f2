package model

import (
	"fmt"
	"time"
)

// The registry publishes snapshots with roughly a two-month lag; a run
// started today targets the period this many days back.
const publishLagDays = 60

// Period identifies one monthly snapshot of the registry.
type Period struct {
	Year  int
	Month time.Month
}

// CurrentPeriod returns the latest period expected to be published as of
// now, accounting for the registry's publication lag.
func CurrentPeriod(now time.Time) Period {
	d := now.AddDate(0, 0, -publishLagDays)
	return Period{Year: d.Year(), Month: d.Month()}
}

// ParsePeriod parses a "YYYY-MM" string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("parse period %q (want YYYY-MM): %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Prev returns the period one month earlier.
func (p Period) Prev() Period {
	d := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Period{Year: d.Year(), Month: d.Month()}
}

// String renders the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
