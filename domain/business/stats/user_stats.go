package stats

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// UserStats statistics about the riders
// + UserTypeCounts: map with the following structure: {userType: amount of trips}
// + GenderCounts: map with the following structure: {gender: amount of trips}
type UserStats struct {
	UserTypeCounts      map[string]int         `json:"user_type_counts"`
	GenderCounts        Result[map[string]int] `json:"gender_counts"`
	EarliestBirthYear   Result[int]            `json:"earliest_birth_year"`
	LatestBirthYear     Result[int]            `json:"latest_birth_year"`
	MostCommonBirthYear Result[int]            `json:"most_common_birth_year"`
}

// ComputeUserStats counts trips by user type and gender and summarizes birth years.
// Gender and birth year statistics are Unavailable when the dataset does not have the column.
// Blank cells are skipped, so a column without non-blank values gives an EmptyResult.
func ComputeUserStats(ds *dataset.Dataset) UserStats {
	schema := ds.GetSchema()
	userTypes := frequencycounter.NewFrequencyCounter[string]()
	genders := frequencycounter.NewFrequencyCounter[string]()
	birthYears := frequencycounter.NewFrequencyCounter[int]()

	ds.ForEach(func(tripData trip.TripData) {
		userTypes.UpdateCounter(tripData.UserType)
		if schema.Gender && tripData.HasGender() {
			genders.UpdateCounter(tripData.Gender)
		}
		if schema.BirthYear && tripData.HasBirthYear() {
			birthYears.UpdateCounter(tripData.BirthYear)
		}
	})

	userStats := UserStats{
		UserTypeCounts: userTypes.GetCounts(),
	}

	switch {
	case !schema.Gender:
		userStats.GenderCounts = NewUnavailableResult[map[string]int]()
	case genders.IsEmpty():
		userStats.GenderCounts = NewEmptyResult[map[string]int]()
	default:
		userStats.GenderCounts = NewResult(genders.GetCounts())
	}

	switch {
	case !schema.BirthYear:
		userStats.EarliestBirthYear = NewUnavailableResult[int]()
		userStats.LatestBirthYear = NewUnavailableResult[int]()
		userStats.MostCommonBirthYear = NewUnavailableResult[int]()
	case birthYears.IsEmpty():
		userStats.EarliestBirthYear = NewEmptyResult[int]()
		userStats.LatestBirthYear = NewEmptyResult[int]()
		userStats.MostCommonBirthYear = NewEmptyResult[int]()
	default:
		earliest, latest := yearRange(birthYears.GetCounts())
		userStats.EarliestBirthYear = NewResult(earliest)
		userStats.LatestBirthYear = NewResult(latest)
		mostCommon, _ := birthYears.Mode(frequencycounter.Ascending[int])
		userStats.MostCommonBirthYear = NewResult(mostCommon)
	}

	return userStats
}

// yearRange returns the smallest and the biggest year of a non-empty map of years
func yearRange(years map[int]int) (int, int) {
	first := true
	var earliest, latest int
	for year := range years {
		if first || year < earliest {
			earliest = year
		}
		if first || year > latest {
			latest = year
		}
		first = false
	}
	return earliest, latest
}
