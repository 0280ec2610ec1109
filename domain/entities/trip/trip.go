package trip

import (
	"time"
)

// TripData struct that contains the data of a single bike trip
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends. Zero value if the dataset does not have it
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of the rider, e.g. Subscriber or Customer
// + Gender: gender of the rider. Empty if the cell is blank or the dataset does not have it
// + BirthYear: birth year of the rider. 0 if the cell is blank or the dataset does not have it
// + TimeFields: fields derived from StartTime, computed once when the dataset is built
type TripData struct {
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Duration     float64    `json:"duration"`
	StartStation string     `json:"start_station"`
	EndStation   string     `json:"end_station"`
	UserType     string     `json:"user_type"`
	Gender       string     `json:"gender,omitempty"`
	BirthYear    int        `json:"birth_year,omitempty"`
	TimeFields   TimeFields `json:"time_fields"`
}

// StationPair start and end station of a trip, used as a compound key
type StationPair struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
}

func (td TripData) GetStationPair() StationPair {
	return StationPair{
		StartStation: td.StartStation,
		EndStation:   td.EndStation,
	}
}

func (td TripData) HasGender() bool {
	return td.Gender != ""
}

func (td TripData) HasBirthYear() bool {
	return td.BirthYear != 0
}

// Less orders pairs by start station and then by end station
func (sp StationPair) Less(other StationPair) bool {
	if sp.StartStation != other.StartStation {
		return sp.StartStation < other.StartStation
	}
	return sp.EndStation < other.EndStation
}

func (sp StationPair) String() string {
	return sp.StartStation + " -> " + sp.EndStation
}
