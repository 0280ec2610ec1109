package stats

import (
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// StationStats most popular stations and trip
type StationStats struct {
	MostCommonStartStation Result[string]           `json:"most_common_start_station"`
	MostCommonEndStation   Result[string]           `json:"most_common_end_station"`
	MostCommonTrip         Result[trip.StationPair] `json:"most_common_trip"`
}

// ComputeStationStats returns the most common start station, end station and combination of both.
// Ties are broken by the lexicographically smallest name; for trips, by start station and then end station.
func ComputeStationStats(ds *dataset.Dataset) StationStats {
	startStations := frequencycounter.NewFrequencyCounter[string]()
	endStations := frequencycounter.NewFrequencyCounter[string]()
	stationPairs := frequencycounter.NewFrequencyCounter[trip.StationPair]()

	ds.ForEach(func(tripData trip.TripData) {
		startStations.UpdateCounter(tripData.StartStation)
		endStations.UpdateCounter(tripData.EndStation)
		stationPairs.UpdateCounter(tripData.GetStationPair())
	})

	startStation, ok := startStations.Mode(frequencycounter.Ascending[string])
	stationStats := StationStats{MostCommonStartStation: resultOf(startStation, ok)}

	endStation, ok := endStations.Mode(frequencycounter.Ascending[string])
	stationStats.MostCommonEndStation = resultOf(endStation, ok)

	stationPair, ok := stationPairs.Mode(trip.StationPair.Less)
	stationStats.MostCommonTrip = resultOf(stationPair, ok)

	return stationStats
}
