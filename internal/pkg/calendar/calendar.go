// Package calendar counts working days for leave and attendance.
package calendar

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

// DayKind classifies a calendar day
type DayKind string

const (
	Workday DayKind = "Workday"
	Weekend DayKind = "Weekend"
	Holiday DayKind = "Holiday"
)

// National holidays observed by the company
var (
	RepublicDay = &cal.Holiday{
		Name:  "Republic Day",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   26,
		Func:  cal.CalcDayOfMonth,
	}
	LabourDay = &cal.Holiday{
		Name:  "Labour Day",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	IndependenceDay = &cal.Holiday{
		Name:  "Independence Day",
		Type:  cal.ObservancePublic,
		Month: time.August,
		Day:   15,
		Func:  cal.CalcDayOfMonth,
	}
	GandhiJayanti = &cal.Holiday{
		Name:  "Gandhi Jayanti",
		Type:  cal.ObservancePublic,
		Month: time.October,
		Day:   2,
		Func:  cal.CalcDayOfMonth,
	}
)

// Calendar wraps a business calendar with Monday-Friday workdays
type Calendar struct {
	bc *cal.BusinessCalendar
}

// New creates a calendar with the national holidays plus any extra ones
func New(extra ...*cal.Holiday) *Calendar {
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(RepublicDay, LabourDay, IndependenceDay, GandhiJayanti)
	bc.AddHoliday(extra...)
	return &Calendar{bc: bc}
}

// Kind reports whether day is a workday, weekend or holiday
func (c *Calendar) Kind(day time.Time) DayKind {
	if actual, _, _ := c.bc.IsHoliday(day); actual {
		return Holiday
	}
	if !c.bc.IsWorkday(day) {
		return Weekend
	}
	return Workday
}

// IsWorkday reports whether day is a working day
func (c *Calendar) IsWorkday(day time.Time) bool {
	return c.Kind(day) == Workday
}

// WorkdaysBetween counts working days from start to end, both inclusive.
// It returns 0 when end is before start.
func (c *Calendar) WorkdaysBetween(start, end time.Time) int {
	start = DateOnly(start)
	end = DateOnly(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkday(d) {
			count++
		}
	}
	return count
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
