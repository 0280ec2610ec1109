package dataset

import (
	"bikeshare/domain/entities/trip"
)

// Schema flags of the optional columns of a dataset. The presence of a column is a
// property of the whole dataset, not of each trip.
type Schema struct {
	Gender    bool `json:"gender"`
	BirthYear bool `json:"birth_year"`
}

// Dataset ordered trips of a city. Once built, a Dataset never changes: filtering
// returns a new Dataset and the accessors return copies.
type Dataset struct {
	city   string
	schema Schema
	trips  []trip.TripData
}

// NewDataset builds a Dataset keeping the order of trips. The TimeFields of each trip
// are derived here, so the caller does not need to fill them.
func NewDataset(city string, schema Schema, trips []trip.TripData) *Dataset {
	tripsCopy := make([]trip.TripData, len(trips))
	for idx := range trips {
		tripsCopy[idx] = trips[idx]
		tripsCopy[idx].TimeFields = trip.DeriveTimeFields(trips[idx].StartTime)
		if !schema.Gender {
			tripsCopy[idx].Gender = ""
		}
		if !schema.BirthYear {
			tripsCopy[idx].BirthYear = 0
		}
	}

	return &Dataset{
		city:   city,
		schema: schema,
		trips:  tripsCopy,
	}
}

// newView builds a Dataset with trips that already have their TimeFields
func newView(city string, schema Schema, trips []trip.TripData) *Dataset {
	return &Dataset{
		city:   city,
		schema: schema,
		trips:  trips,
	}
}

func (d *Dataset) GetCity() string {
	return d.city
}

func (d *Dataset) GetSchema() Schema {
	return d.schema
}

func (d *Dataset) Len() int {
	return len(d.trips)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.trips) == 0
}

// Trips returns a copy of the trips in file order
func (d *Dataset) Trips() []trip.TripData {
	tripsCopy := make([]trip.TripData, len(d.trips))
	copy(tripsCopy, d.trips)
	return tripsCopy
}

// ForEach calls fn with every trip in file order. fn receives a copy of the trip.
func (d *Dataset) ForEach(fn func(tripData trip.TripData)) {
	for _, tripData := range d.trips {
		fn(tripData)
	}
}

// Where returns a new Dataset with the trips for which keep returns true. The order is preserved.
func (d *Dataset) Where(keep func(tripData trip.TripData) bool) *Dataset {
	var kept []trip.TripData
	for _, tripData := range d.trips {
		if keep(tripData) {
			kept = append(kept, tripData)
		}
	}
	return newView(d.city, d.schema, kept)
}

// Page returns up to size trips beginning at start. It's used to preview raw rows.
// If start is beyond the end of the dataset an empty slice is returned.
func (d *Dataset) Page(start int, size int) []trip.TripData {
	if start < 0 || size <= 0 || start >= len(d.trips) {
		return []trip.TripData{}
	}

	end := start + size
	if end > len(d.trips) {
		end = len(d.trips)
	}

	page := make([]trip.TripData, end-start)
	copy(page, d.trips[start:end])
	return page
}
