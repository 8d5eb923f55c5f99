// Package holiday decides whether scoring runs in holiday-boost mode by
// measuring the distance from a reference date to the nearest recurring
// calendar holiday.
package holiday

import (
	"fmt"
	"strings"
	"time"
)

// Date is a recurring month/day holiday.
type Date struct {
	Month time.Month
	Day   int
}

// DefaultDates returns the recognized annual holidays: New Year,
// Valentine's Day, Women's Day, Children's Day, Mid-Autumn, National Day,
// and Christmas.
func DefaultDates() []Date {
	return []Date{
		{time.January, 1},
		{time.February, 14},
		{time.March, 8},
		{time.June, 1},
		{time.September, 15},
		{time.October, 1},
		{time.December, 25},
	}
}

// ParseMonthDay parses a "MM-DD" holiday date from configuration.
func ParseMonthDay(s string) (Date, error) {
	t, err := time.Parse("01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("holiday: invalid month-day %q: %w", s, err)
	}
	return Date{Month: t.Month(), Day: t.Day()}, nil
}

// Detector flags holiday mode when the reference date falls within the
// window of any configured holiday.
type Detector struct {
	dates  []Date
	window int
}

// DefaultWindowDays is how close (in days) a holiday must be for boost
// mode to activate.
const DefaultWindowDays = 45

// NewDetector builds a detector. Nil dates fall back to DefaultDates and a
// non-positive window falls back to DefaultWindowDays.
func NewDetector(dates []Date, windowDays int) *Detector {
	if len(dates) == 0 {
		dates = DefaultDates()
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Detector{dates: dates, window: windowDays}
}

// DaysToNearest returns the minimum day count from ref to any configured
// holiday, considering both the current and following year's occurrence.
func (d *Detector) DaysToNearest(ref time.Time) int {
	ref = truncate(ref)
	minDays := -1

	for _, h := range d.dates {
		for _, year := range []int{ref.Year(), ref.Year() + 1} {
			occ := time.Date(year, h.Month, h.Day, 0, 0, 0, 0, ref.Location())
			if occ.Before(ref) {
				continue
			}
			days := int(occ.Sub(ref).Hours() / 24)
			if minDays < 0 || days < minDays {
				minDays = days
			}
		}
	}

	return minDays
}

// Active reports whether ref is within the boost window of a holiday.
func (d *Detector) Active(ref time.Time) bool {
	days := d.DaysToNearest(ref)
	return days >= 0 && days <= d.window
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
