package durationaccumulator

// DurationAccumulator struct that collects data about the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations of trips, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

// Merge returns a new DurationAccumulator with the data of both accumulators
func (da *DurationAccumulator) Merge(durationAccumulator2 *DurationAccumulator) *DurationAccumulator {
	return &DurationAccumulator{
		Counter:       da.Counter + durationAccumulator2.Counter,
		TotalDuration: da.TotalDuration + durationAccumulator2.TotalDuration,
	}
}

// GetAverageDuration returns the mean duration. The second value is false if no trip was collected
func (da *DurationAccumulator) GetAverageDuration() (float64, bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDuration / float64(da.Counter), true
}
