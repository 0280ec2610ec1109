package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTimeFields(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		expected TimeFields
	}{
		{
			name:     "monday morning",
			start:    time.Date(2017, time.January, 2, 9, 7, 57, 0, time.UTC),
			expected: TimeFields{Month: time.January, DayOfWeek: time.Monday, Hour: 9},
		},
		{
			name:     "sunday before midnight",
			start:    time.Date(2017, time.June, 25, 23, 59, 59, 0, time.UTC),
			expected: TimeFields{Month: time.June, DayOfWeek: time.Sunday, Hour: 23},
		},
		{
			name:     "leap day",
			start:    time.Date(2016, time.February, 29, 0, 0, 0, 0, time.UTC),
			expected: TimeFields{Month: time.February, DayOfWeek: time.Monday, Hour: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveTimeFields(tc.start))
		})
	}
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(time.Monday))
	assert.Equal(t, 5, WeekdayIndex(time.Saturday))
	assert.Equal(t, 6, WeekdayIndex(time.Sunday))
}

func TestStationPair_Less(t *testing.T) {
	a := StationPair{StartStation: "Alpha St", EndStation: "Zeta"}
	b := StationPair{StartStation: "Beta Ave", EndStation: "Alpha St"}
	c := StationPair{StartStation: "Alpha St", EndStation: "Beta Ave"}

	assert.True(t, a.Less(b))
	assert.True(t, c.Less(a))
	assert.False(t, a.Less(a))
}
