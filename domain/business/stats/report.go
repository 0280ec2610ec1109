package stats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"bikeshare/domain/business/filter"
	"bikeshare/domain/entities/dataset"
)

const (
	TimeGroup     = "time"
	StationsGroup = "stations"
	DurationGroup = "duration"
	UsersGroup    = "users"
)

// Report statistics of the trips of a city that match a FilterSpec
// + Timings: map with the following structure: {group: time spent computing it}
type Report struct {
	City      string                   `json:"city"`
	Filter    filter.FilterSpec        `json:"filter"`
	TripCount int                      `json:"trip_count"`
	Time      TimeStats                `json:"time_stats"`
	Stations  StationStats             `json:"station_stats"`
	Durations DurationStats            `json:"duration_stats"`
	Users     UserStats                `json:"user_stats"`
	Timings   map[string]time.Duration `json:"timings"`
}

// Aggregate computes the four groups of statistics over filtered, the result of applying spec.
// Each group only reads the dataset, so they are computed concurrently.
func Aggregate(filtered *dataset.Dataset, spec filter.FilterSpec) *Report {
	report := &Report{
		City:      filtered.GetCity(),
		Filter:    spec,
		TripCount: filtered.Len(),
	}

	var timeElapsed, stationsElapsed, durationElapsed, usersElapsed time.Duration
	var group errgroup.Group

	group.Go(func() error {
		start := time.Now()
		report.Time = ComputeTimeStats(filtered)
		timeElapsed = time.Since(start)
		return nil
	})

	group.Go(func() error {
		start := time.Now()
		report.Stations = ComputeStationStats(filtered)
		stationsElapsed = time.Since(start)
		return nil
	})

	group.Go(func() error {
		start := time.Now()
		report.Durations = ComputeDurationStats(filtered)
		durationElapsed = time.Since(start)
		return nil
	})

	group.Go(func() error {
		start := time.Now()
		report.Users = ComputeUserStats(filtered)
		usersElapsed = time.Since(start)
		return nil
	})

	// groups never fail
	_ = group.Wait()

	report.Timings = map[string]time.Duration{
		TimeGroup:     timeElapsed,
		StationsGroup: stationsElapsed,
		DurationGroup: durationElapsed,
		UsersGroup:    usersElapsed,
	}

	log.Debug(getLogMessage("Aggregate", fmt.Sprintf("statistics computed for %d trips of %s (%s)", report.TripCount, report.City, spec), nil))
	return report
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: stats][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: stats][method: %s][status: OK] %s", method, message)
}
