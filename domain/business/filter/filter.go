package filter

import (
	"fmt"
	"strings"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// All is the value of a selector that applies no filter
const All = "all"

var (
	// Months that can be selected, in calendar order
	Months = []string{"january", "february", "march", "april", "may", "june"}
	// Days that can be selected, beginning on Monday
	Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// FilterSpec month and day selected for an analysis run
// + Month: one of Months or All
// + Day: one of Days or All
type FilterSpec struct {
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewFilterSpec normalizes and validates the month and the day. It's meant to be used with
// user input; Apply assumes a FilterSpec that is already valid.
func NewFilterSpec(month string, day string) (FilterSpec, error) {
	month = strings.ToLower(strings.TrimSpace(month))
	day = strings.ToLower(strings.TrimSpace(day))

	if month != All && monthNumber(month) == 0 {
		return FilterSpec{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}

	if day != All && !utils.ContainsString(day, Days) {
		return FilterSpec{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	return FilterSpec{Month: month, Day: day}, nil
}

// NoFilter returns a FilterSpec that keeps every trip
func NoFilter() FilterSpec {
	return FilterSpec{Month: All, Day: All}
}

func (fs FilterSpec) String() string {
	return fmt.Sprintf("month: %s, day: %s", fs.Month, fs.Day)
}

// Apply returns a new Dataset with the trips of ds that match spec. Both selectors must match.
// ds is not modified and the order of the trips is preserved. An empty result is valid.
func Apply(ds *dataset.Dataset, spec FilterSpec) *dataset.Dataset {
	month := monthNumber(spec.Month)
	filterByMonth := spec.Month != All
	filterByDay := spec.Day != All

	return ds.Where(func(tripData trip.TripData) bool {
		if filterByMonth && int(tripData.TimeFields.Month) != month {
			return false
		}

		if filterByDay && !strings.EqualFold(tripData.TimeFields.DayOfWeek.String(), spec.Day) {
			return false
		}

		return true
	})
}

// monthNumber returns the 1-based position of month in Months, or 0 if it's not there
func monthNumber(month string) int {
	for idx := range Months {
		if Months[idx] == month {
			return idx + 1
		}
	}
	return 0
}
