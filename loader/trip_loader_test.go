package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chicagoSample = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Customer,,
`

const washingtonSample = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,"Connecticut Ave & Yuma St NW",Subscriber
`

func TestTripLoader_LoadWithOptionalColumns(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	ds, err := tripLoader.Load(strings.NewReader(chicagoSample), "chicago")
	require.NoError(t, err)

	assert.Equal(t, "chicago", ds.GetCity())
	assert.True(t, ds.GetSchema().Gender)
	assert.True(t, ds.GetSchema().BirthYear)
	require.Equal(t, 3, ds.Len())

	trips := ds.Trips()
	first := trips[0]
	assert.Equal(t, time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC), first.StartTime)
	assert.Equal(t, time.Date(2017, time.June, 23, 15, 14, 53, 0, time.UTC), first.EndTime)
	assert.Equal(t, 321.0, first.Duration)
	assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
	assert.Equal(t, "Damen Ave & Chicago Ave", first.EndStation)
	assert.Equal(t, "Subscriber", first.UserType)
	assert.Equal(t, "Male", first.Gender)
	assert.Equal(t, 1992, first.BirthYear)
	assert.Equal(t, time.June, first.TimeFields.Month)
	assert.Equal(t, time.Friday, first.TimeFields.DayOfWeek)
	assert.Equal(t, 15, first.TimeFields.Hour)

	// blank optional cells
	assert.False(t, trips[2].HasGender())
	assert.False(t, trips[2].HasBirthYear())
}

func TestTripLoader_LoadWithoutOptionalColumns(t *testing.T) {
	tripLoader := NewTripLoader(DefaultConfig())

	ds, err := tripLoader.Load(strings.NewReader(washingtonSample), "washington")
	require.NoError(t, err)

	assert.False(t, ds.GetSchema().Gender)
	assert.False(t, ds.GetSchema().BirthYear)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 489.066, ds.Trips()[0].Duration)
	assert.Equal(t, "Connecticut Ave & Yuma St NW", ds.Trips()[1].EndStation)
}

func TestTripLoader_DerivesDurationFromEndTime(t *testing.T) {
	input := `Start Time,End Time,Start Station,End Station,User Type
2017-01-02 10:00:00,2017-01-02 10:30:15,A,B,Customer
`
	ds, err := NewTripLoader(DefaultConfig()).Load(strings.NewReader(input), "chicago")
	require.NoError(t, err)

	assert.Equal(t, 1815.0, ds.Trips()[0].Duration)
}

func TestTripLoader_EndTimeIsOptionalWithDuration(t *testing.T) {
	input := `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-01-02 10:00:00,,60,A,B,Subscriber
2017-01-02 11:00:00,not a date,90,B,C,Customer
2017-01-02 12:00:00,2017-01-02 12:02:00,120,C,A,Subscriber
`
	ds, err := NewTripLoader(DefaultConfig()).Load(strings.NewReader(input), "chicago")
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	trips := ds.Trips()
	assert.True(t, trips[0].EndTime.IsZero())
	assert.Equal(t, 60.0, trips[0].Duration)
	assert.True(t, trips[1].EndTime.IsZero())
	assert.Equal(t, 90.0, trips[1].Duration)
	assert.Equal(t, time.Date(2017, time.January, 2, 12, 2, 0, 0, time.UTC), trips[2].EndTime)
}

func TestTripLoader_CustomColumnsAndLayouts(t *testing.T) {
	input := `started_at,duration_sec,from,to,rider
02/01/2017 10:00,60,A,B,member
`
	loaderConfig := Config{
		Columns: Columns{
			StartTime:    "started_at",
			Duration:     "duration_sec",
			StartStation: "from",
			EndStation:   "to",
			UserType:     "rider",
		},
		TimestampLayouts: []string{"2006-01-02 15:04:05", "02/01/2006 15:04"},
	}

	ds, err := NewTripLoader(loaderConfig).Load(strings.NewReader(input), "custom")
	require.NoError(t, err)

	first := ds.Trips()[0]
	assert.Equal(t, time.Date(2017, time.January, 2, 10, 0, 0, 0, time.UTC), first.StartTime)
	assert.Equal(t, "member", first.UserType)
}

func TestTripLoader_LoadErrors(t *testing.T) {
	header := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Birth Year\n"

	testCases := []struct {
		name          string
		input         string
		expectedErr   error
		expectedLine  int
		expectedField string
	}{
		{
			name:         "empty file",
			input:        "",
			expectedErr:  ErrEmptyFile,
			expectedLine: 1,
		},
		{
			name:         "missing required column",
			input:        "Start Time,Trip Duration,End Station\n",
			expectedErr:  ErrMissingColumn,
			expectedLine: 1,
		},
		{
			name:          "unparseable start time",
			input:         header + "2017-01-02 10:00:00,2017-01-02 10:01:00,60,A,B,Subscriber,1990\nnot a date,2017-01-02 10:01:00,60,A,B,Subscriber,1990\n",
			expectedErr:   ErrInvalidDate,
			expectedLine:  3,
			expectedField: "Start Time",
		},
		{
			name:          "missing start time",
			input:         header + ",2017-01-02 10:01:00,60,A,B,Subscriber,1990\n",
			expectedErr:   ErrMissingValue,
			expectedLine:  2,
			expectedField: "Start Time",
		},
		{
			name:          "invalid duration",
			input:         header + "2017-01-02 10:00:00,2017-01-02 10:01:00,sixty,A,B,Subscriber,1990\n",
			expectedErr:   ErrInvalidDurationType,
			expectedLine:  2,
			expectedField: "Trip Duration",
		},
		{
			name:          "invalid birth year",
			input:         header + "2017-01-02 10:00:00,2017-01-02 10:01:00,60,A,B,Subscriber,1990.5\n",
			expectedErr:   ErrInvalidBirthYear,
			expectedLine:  2,
			expectedField: "Birth Year",
		},
		{
			name:          "blank end time needed for the duration",
			input:         "Start Time,End Time,Start Station,End Station,User Type\n2017-01-02 10:00:00,,A,B,Subscriber\n",
			expectedErr:   ErrMissingValue,
			expectedLine:  2,
			expectedField: "End Time",
		},
		{
			name:          "unparseable end time needed for the duration",
			input:         "Start Time,End Time,Start Station,End Station,User Type\n2017-01-02 10:00:00,later,A,B,Subscriber\n",
			expectedErr:   ErrInvalidDate,
			expectedLine:  2,
			expectedField: "End Time",
		},
		{
			name:         "bare quote",
			input:        header + "2017-01-02 10:00:00,2017-01-02 10:01:00,60,A\"x,B,Subscriber,1990\n",
			expectedErr:  ErrMalformedRow,
			expectedLine: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTripLoader(DefaultConfig()).Load(strings.NewReader(tc.input), "chicago")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)

			var loadError *LoadError
			require.True(t, errors.As(err, &loadError))
			assert.Equal(t, tc.expectedLine, loadError.Line)
			assert.Equal(t, tc.expectedField, loadError.Column)
		})
	}
}

func TestTripLoader_RowErrorsAreInvalidTripData(t *testing.T) {
	input := "Start Time,Trip Duration,Start Station,End Station,User Type\n2017-13-45 10:00:00,60,A,B,Subscriber\n"

	_, err := NewTripLoader(DefaultConfig()).Load(strings.NewReader(input), "chicago")

	assert.ErrorIs(t, err, ErrInvalidTripData)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestTripLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chicago.csv")
	require.NoError(t, os.WriteFile(path, []byte(chicagoSample), 0o600))

	ds, err := NewTripLoader(DefaultConfig()).LoadFile(path, "chicago")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	_, err = NewTripLoader(DefaultConfig()).LoadFile(filepath.Join(t.TempDir(), "missing.csv"), "chicago")
	var loadError *LoadError
	require.True(t, errors.As(err, &loadError))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
