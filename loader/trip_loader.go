package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const notFound = -1

// columnIndexes position of each column in a trips file, notFound if the file does not have it
type columnIndexes struct {
	StartTime    int
	EndTime      int
	Duration     int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

// TripLoader reads trips files and builds datasets with them
type TripLoader struct {
	config Config
}

func NewTripLoader(loaderConfig Config) *TripLoader {
	return &TripLoader{
		config: loaderConfig.WithDefaults(),
	}
}

func (tl *TripLoader) getLogMessage(method string, city string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: loader][city: %s][method: %s][status: ERROR] %s: %s", city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: loader][city: %s][method: %s][status: OK] %s", city, method, message)
}

// LoadFile loads the trips of city from the csv file in filepath
func (tl *TripLoader) LoadFile(filepath string, city string) (*dataset.Dataset, error) {
	dataFile, err := os.Open(filepath)
	if err != nil {
		log.Error(tl.getLogMessage("LoadFile", city, fmt.Sprintf("error opening %s", filepath), err))
		return nil, &LoadError{Source: filepath, Err: err}
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(tl.getLogMessage("LoadFile", city, fmt.Sprintf("error closing %s", filepath), err))
		}
	}(dataFile)

	return tl.load(dataFile, filepath, city)
}

// Load loads the trips of city from a csv stream whose first line is the header.
// The gender and birth year schema flags are set based on the header.
func (tl *TripLoader) Load(reader io.Reader, city string) (*dataset.Dataset, error) {
	return tl.load(reader, city, city)
}

func (tl *TripLoader) load(reader io.Reader, source string, city string) (*dataset.Dataset, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Source: source, Line: 1, Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, &LoadError{Source: source, Line: 1, Err: fmt.Errorf("%w: %w", ErrMalformedRow, err)}
	}

	indexes, err := tl.getColumnIndexes(header)
	if err != nil {
		return nil, &LoadError{Source: source, Line: 1, Err: err}
	}

	schema := dataset.Schema{
		Gender:    indexes.Gender != notFound,
		BirthYear: indexes.BirthYear != notFound,
	}

	var trips []trip.TripData
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseError *csv.ParseError
			line := 0
			if errors.As(err, &parseError) {
				line = parseError.Line
			}
			return nil, &LoadError{Source: source, Line: line, Err: fmt.Errorf("%w: %w", ErrMalformedRow, err)}
		}

		line, _ := csvReader.FieldPos(0)

		if isBlankRecord(record) {
			continue
		}

		tripData, column, err := tl.getTripData(record, indexes)
		if err != nil {
			log.Debug(tl.getLogMessage("Load", city, fmt.Sprintf("invalid trip at line %d", line), err))
			return nil, &LoadError{Source: source, Line: line, Column: column, Err: err}
		}
		trips = append(trips, tripData)
	}

	log.Info(tl.getLogMessage("Load", city, fmt.Sprintf("%d trips loaded from %s", len(trips), source), nil))
	return dataset.NewDataset(city, schema, trips), nil
}

// getColumnIndexes finds the position of each column in the header. Start time, stations and
// user type are required; so is the duration or, when it's missing, the end time to derive it.
func (tl *TripLoader) getColumnIndexes(header []string) (columnIndexes, error) {
	trimmedHeader := make([]string, len(header))
	for idx := range header {
		trimmedHeader[idx] = strings.TrimSpace(strings.TrimPrefix(header[idx], "\ufeff"))
	}

	columns := tl.config.Columns
	indexes := columnIndexes{
		StartTime:    utils.IndexOfFold(columns.StartTime, trimmedHeader),
		EndTime:      utils.IndexOfFold(columns.EndTime, trimmedHeader),
		Duration:     utils.IndexOfFold(columns.Duration, trimmedHeader),
		StartStation: utils.IndexOfFold(columns.StartStation, trimmedHeader),
		EndStation:   utils.IndexOfFold(columns.EndStation, trimmedHeader),
		UserType:     utils.IndexOfFold(columns.UserType, trimmedHeader),
		Gender:       utils.IndexOfFold(columns.Gender, trimmedHeader),
		BirthYear:    utils.IndexOfFold(columns.BirthYear, trimmedHeader),
	}

	var missing []string
	if indexes.StartTime == notFound {
		missing = append(missing, columns.StartTime)
	}
	if indexes.StartStation == notFound {
		missing = append(missing, columns.StartStation)
	}
	if indexes.EndStation == notFound {
		missing = append(missing, columns.EndStation)
	}
	if indexes.UserType == notFound {
		missing = append(missing, columns.UserType)
	}
	if indexes.Duration == notFound && indexes.EndTime == notFound {
		missing = append(missing, columns.Duration)
	}

	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return indexes, nil
}

// getTripData returns the trip of a record. If the record is not valid, the name of the
// column with the invalid value is returned along with the error
func (tl *TripLoader) getTripData(record []string, indexes columnIndexes) (trip.TripData, string, error) {
	columns := tl.config.Columns
	var tripData trip.TripData

	startTime, err := tl.parseTimestamp(field(record, indexes.StartTime))
	if err != nil {
		return trip.TripData{}, columns.StartTime, err
	}
	tripData.StartTime = startTime

	if indexes.Duration != notFound {
		duration, err := parseDuration(field(record, indexes.Duration))
		if err != nil {
			return trip.TripData{}, columns.Duration, err
		}
		tripData.Duration = duration

		// end time is informative only, a blank or unknown value is left as zero
		if indexes.EndTime != notFound {
			endTime, err := tl.parseTimestamp(field(record, indexes.EndTime))
			if err == nil {
				tripData.EndTime = endTime
			}
		}
	} else {
		endTime, err := tl.parseTimestamp(field(record, indexes.EndTime))
		if err != nil {
			return trip.TripData{}, columns.EndTime, err
		}
		tripData.EndTime = endTime
		tripData.Duration = endTime.Sub(tripData.StartTime).Seconds()
	}

	tripData.StartStation = field(record, indexes.StartStation)
	tripData.EndStation = field(record, indexes.EndStation)
	tripData.UserType = field(record, indexes.UserType)

	if indexes.Gender != notFound {
		tripData.Gender = field(record, indexes.Gender)
	}

	if indexes.BirthYear != notFound {
		birthYear, err := parseBirthYear(field(record, indexes.BirthYear))
		if err != nil {
			return trip.TripData{}, columns.BirthYear, err
		}
		tripData.BirthYear = birthYear
	}

	return tripData, "", nil
}

func (tl *TripLoader) parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMissingValue, ErrInvalidTripData)
	}

	for _, layout := range tl.config.TimestampLayouts {
		timestamp, err := time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, value, ErrInvalidTripData)
}

func parseDuration(value string) (float64, error) {
	duration, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidDurationType, value, ErrInvalidTripData)
	}
	return duration, nil
}

// parseBirthYear parses years written as integers or as floats, e.g. 1992.0. A blank cell is 0
func parseBirthYear(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil || year != math.Trunc(year) || year <= 0 {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidBirthYear, value, ErrInvalidTripData)
	}
	return int(year), nil
}

// field returns the trimmed value at idx, or an empty string if the record is shorter
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isBlankRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
