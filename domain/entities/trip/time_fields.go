package trip

import "time"

// TimeFields fields derived from the start time of a trip
// + Month: month of the year, January is 1
// + DayOfWeek: day of the week. Its name is given by DayOfWeek.String()
// + Hour: hour of the day, between 0 and 23
type TimeFields struct {
	Month     time.Month   `json:"month"`
	DayOfWeek time.Weekday `json:"day_of_week"`
	Hour      int          `json:"hour"`
}

// DeriveTimeFields returns the TimeFields of a trip that begins at startTime.
// The Gregorian calendar of the time package is used, so the result does not depend on the locale.
func DeriveTimeFields(startTime time.Time) TimeFields {
	return TimeFields{
		Month:     startTime.Month(),
		DayOfWeek: startTime.Weekday(),
		Hour:      startTime.Hour(),
	}
}

// WeekdayIndex returns the position of the day in a week that begins on Monday: Monday is 0 and Sunday is 6
func WeekdayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}
