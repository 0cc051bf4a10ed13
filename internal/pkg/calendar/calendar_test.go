package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestKind(t *testing.T) {
	c := New()

	assert.Equal(t, Workday, c.Kind(day(2025, time.March, 12)))   // Wednesday
	assert.Equal(t, Weekend, c.Kind(day(2025, time.March, 15)))   // Saturday
	assert.Equal(t, Holiday, c.Kind(day(2025, time.August, 15)))  // Friday, Independence Day
	assert.Equal(t, Holiday, c.Kind(day(2024, time.January, 26))) // Friday, Republic Day
}

func TestWorkdaysBetween(t *testing.T) {
	c := New()

	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single workday", day(2025, time.March, 12), day(2025, time.March, 12), 1},
		{"full week", day(2025, time.March, 10), day(2025, time.March, 16), 5},
		{"weekend only", day(2025, time.March, 15), day(2025, time.March, 16), 0},
		{"week with holiday", day(2025, time.August, 11), day(2025, time.August, 17), 4},
		{"reversed range", day(2025, time.March, 16), day(2025, time.March, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.WorkdaysBetween(tt.start, tt.end))
		})
	}
}

func TestWorkdaysBetweenIgnoresTimeOfDay(t *testing.T) {
	c := New()
	start := time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 11, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, c.WorkdaysBetween(start, end))
}
