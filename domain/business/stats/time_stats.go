package stats

import (
	"time"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth Result[time.Month]   `json:"most_common_month"`
	MostCommonDay   Result[time.Weekday] `json:"most_common_day"`
	MostCommonHour  Result[int]          `json:"most_common_hour"`
}

// ComputeTimeStats returns the most common month, day of week and start hour of the trips in ds.
// Ties are broken by the earliest month, the earliest day in a week that begins on Monday and
// the earliest hour.
func ComputeTimeStats(ds *dataset.Dataset) TimeStats {
	months := frequencycounter.NewFrequencyCounter[time.Month]()
	days := frequencycounter.NewFrequencyCounter[time.Weekday]()
	hours := frequencycounter.NewFrequencyCounter[int]()

	ds.ForEach(func(tripData trip.TripData) {
		months.UpdateCounter(tripData.TimeFields.Month)
		days.UpdateCounter(tripData.TimeFields.DayOfWeek)
		hours.UpdateCounter(tripData.TimeFields.Hour)
	})

	month, ok := months.Mode(frequencycounter.Ascending[time.Month])
	timeStats := TimeStats{MostCommonMonth: resultOf(month, ok)}

	day, ok := days.Mode(weekdayLess)
	timeStats.MostCommonDay = resultOf(day, ok)

	hour, ok := hours.Mode(frequencycounter.Ascending[int])
	timeStats.MostCommonHour = resultOf(hour, ok)

	return timeStats
}

func weekdayLess(a time.Weekday, b time.Weekday) bool {
	return trip.WeekdayIndex(a) < trip.WeekdayIndex(b)
}
