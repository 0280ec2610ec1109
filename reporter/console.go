package reporter

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
)

const (
	separator       = "----------------------------------------"
	noDataMessage   = "no data for this selection"
	unavailableText = "%s stats cannot be calculated because %s does not appear in the dataset."
	timestampLayout = "2006-01-02 15:04:05"
)

// Reporter renders or ships the statistics of an analysis run
type Reporter interface {
	Report(ctx context.Context, report *stats.Report) error
}

// Console writes reports in a human readable format
type Console struct {
	writer io.Writer
}

func NewConsole(writer io.Writer) *Console {
	return &Console{
		writer: writer,
	}
}

// Report writes the four groups of statistics of report
func (c *Console) Report(_ context.Context, report *stats.Report) error {
	var builder strings.Builder

	fmt.Fprintf(&builder, "\nStatistics for %s (%s): %d trips\n%s\n", report.City, report.Filter, report.TripCount, separator)
	writeTimeStats(&builder, report.Time, report.Timings[stats.TimeGroup])
	writeStationStats(&builder, report.Stations, report.Timings[stats.StationsGroup])
	writeDurationStats(&builder, report.Durations, report.Timings[stats.DurationGroup])
	writeUserStats(&builder, report.Users, report.Timings[stats.UsersGroup])

	_, err := io.WriteString(c.writer, builder.String())
	if err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

// RenderRows writes a table with the raw data of rows. Gender and birth year columns are only
// written when schema has them.
func (c *Console) RenderRows(rows []trip.TripData, schema dataset.Schema) error {
	tableWriter := tabwriter.NewWriter(c.writer, 0, 0, 2, ' ', 0)

	header := []string{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if schema.Gender {
		header = append(header, "Gender")
	}
	if schema.BirthYear {
		header = append(header, "Birth Year")
	}
	fmt.Fprintln(tableWriter, strings.Join(header, "\t"))

	for _, row := range rows {
		values := []string{
			row.StartTime.Format(timestampLayout),
			formatEndTime(row.EndTime),
			strconv.FormatFloat(row.Duration, 'f', -1, 64),
			row.StartStation,
			row.EndStation,
			row.UserType,
		}
		if schema.Gender {
			values = append(values, row.Gender)
		}
		if schema.BirthYear {
			values = append(values, formatBirthYear(row))
		}
		fmt.Fprintln(tableWriter, strings.Join(values, "\t"))
	}

	err := tableWriter.Flush()
	if err != nil {
		return fmt.Errorf("error writing rows: %w", err)
	}
	return nil
}

func writeTimeStats(builder *strings.Builder, timeStats stats.TimeStats, elapsed time.Duration) {
	builder.WriteString("\nCalculating The Most Frequent Times of Travel...\n\n")
	writeLine(builder, "Most Common Month", formatResult(timeStats.MostCommonMonth, time.Month.String))
	writeLine(builder, "Most Common Day of Week", formatResult(timeStats.MostCommonDay, time.Weekday.String))
	writeLine(builder, "Most Common Start Hour", formatResult(timeStats.MostCommonHour, strconv.Itoa))
	writeFooter(builder, elapsed)
}

func writeStationStats(builder *strings.Builder, stationStats stats.StationStats, elapsed time.Duration) {
	builder.WriteString("\nCalculating The Most Popular Stations and Trip...\n\n")
	writeLine(builder, "Most Common Start Station", formatResult(stationStats.MostCommonStartStation, identity))
	writeLine(builder, "Most Common End Station", formatResult(stationStats.MostCommonEndStation, identity))
	writeLine(builder, "Most Common Trip", formatResult(stationStats.MostCommonTrip, trip.StationPair.String))
	writeFooter(builder, elapsed)
}

func writeDurationStats(builder *strings.Builder, durationStats stats.DurationStats, elapsed time.Duration) {
	builder.WriteString("\nCalculating Trip Duration...\n\n")
	writeLine(builder, "Total Trip Duration", formatSeconds(durationStats.TotalDuration))
	writeLine(builder, "Average Trip Duration", formatResult(durationStats.AverageDuration, formatSeconds))
	writeFooter(builder, elapsed)
}

func writeUserStats(builder *strings.Builder, userStats stats.UserStats, elapsed time.Duration) {
	builder.WriteString("\nCalculating User Stats...\n\n")

	if len(userStats.UserTypeCounts) == 0 {
		writeLine(builder, "User Type Counts", noDataMessage)
	}
	writeCounts(builder, userStats.UserTypeCounts)

	switch userStats.GenderCounts.Status {
	case stats.Unavailable:
		builder.WriteString(fmt.Sprintf(unavailableText, "Gender", "Gender") + "\n")
	case stats.EmptyResult:
		writeLine(builder, "Gender Counts", noDataMessage)
	default:
		writeCounts(builder, userStats.GenderCounts.Value)
	}

	if userStats.MostCommonBirthYear.Status == stats.Unavailable {
		builder.WriteString(fmt.Sprintf(unavailableText, "Birth Year", "Birth Year") + "\n")
	} else {
		writeLine(builder, "Earliest Birth Year", formatResult(userStats.EarliestBirthYear, strconv.Itoa))
		writeLine(builder, "Most Recent Birth Year", formatResult(userStats.LatestBirthYear, strconv.Itoa))
		writeLine(builder, "Most Common Birth Year", formatResult(userStats.MostCommonBirthYear, strconv.Itoa))
	}
	writeFooter(builder, elapsed)
}

// writeCounts writes one line per key, sorted by key
func writeCounts(builder *strings.Builder, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		writeLine(builder, key+" Count", strconv.Itoa(counts[key]))
	}
}

func writeLine(builder *strings.Builder, label string, value string) {
	builder.WriteString(label + ": " + value + "\n")
}

func writeFooter(builder *strings.Builder, elapsed time.Duration) {
	fmt.Fprintf(builder, "\nThis took %f seconds.\n%s\n", elapsed.Seconds(), separator)
}

func formatResult[T any](result stats.Result[T], format func(T) string) string {
	switch result.Status {
	case stats.Available:
		return format(result.Value)
	case stats.Unavailable:
		return "not available in this dataset"
	default:
		return noDataMessage
	}
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64) + " seconds"
}

func formatEndTime(endTime time.Time) string {
	if endTime.IsZero() {
		return ""
	}
	return endTime.Format(timestampLayout)
}

func formatBirthYear(row trip.TripData) string {
	if !row.HasBirthYear() {
		return ""
	}
	return strconv.Itoa(row.BirthYear)
}

func identity(value string) string {
	return value
}
