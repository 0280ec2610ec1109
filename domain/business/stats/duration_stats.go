package stats

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

// DurationStats total and average trip duration, in seconds
type DurationStats struct {
	TotalDuration   float64         `json:"total_duration"`
	AverageDuration Result[float64] `json:"average_duration"`
}

// ComputeDurationStats returns the total and the mean duration of the trips in ds.
// The total of an empty dataset is 0 while its average is an EmptyResult.
func ComputeDurationStats(ds *dataset.Dataset) DurationStats {
	accumulator := durationaccumulator.NewDurationAccumulator()
	ds.ForEach(func(tripData trip.TripData) {
		accumulator.UpdateAccumulator(tripData.Duration)
	})

	return durationStatsFromAccumulator(accumulator)
}

func durationStatsFromAccumulator(accumulator *durationaccumulator.DurationAccumulator) DurationStats {
	average, ok := accumulator.GetAverageDuration()
	return DurationStats{
		TotalDuration:   accumulator.TotalDuration,
		AverageDuration: resultOf(average, ok),
	}
}
