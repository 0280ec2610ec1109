package loader

const defaultTimestampLayout = "2006-01-02 15:04:05"

// Columns names of the columns of a trips file. Names are matched ignoring case
type Columns struct {
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	Duration     string `yaml:"duration"`
	StartStation string `yaml:"start_station"`
	EndStation   string `yaml:"end_station"`
	UserType     string `yaml:"user_type"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// Config configuration of the loader
// + Columns: names of the columns to read
// + TimestampLayouts: layouts tried, in order, to parse start and end times
type Config struct {
	Columns          Columns  `yaml:"columns"`
	TimestampLayouts []string `yaml:"timestamp_layouts"`
}

// DefaultConfig returns the configuration that matches the bikeshare files of
// Chicago, New York City and Washington
func DefaultConfig() Config {
	return Config{
		Columns: Columns{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			Duration:     "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
		TimestampLayouts: []string{defaultTimestampLayout},
	}
}

// WithDefaults returns a copy of c where every empty field has its default value
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()
	result := c
	fillString(&result.Columns.StartTime, defaults.Columns.StartTime)
	fillString(&result.Columns.EndTime, defaults.Columns.EndTime)
	fillString(&result.Columns.Duration, defaults.Columns.Duration)
	fillString(&result.Columns.StartStation, defaults.Columns.StartStation)
	fillString(&result.Columns.EndStation, defaults.Columns.EndStation)
	fillString(&result.Columns.UserType, defaults.Columns.UserType)
	fillString(&result.Columns.Gender, defaults.Columns.Gender)
	fillString(&result.Columns.BirthYear, defaults.Columns.BirthYear)
	if len(result.TimestampLayouts) == 0 {
		result.TimestampLayouts = defaults.TimestampLayouts
	}
	return result
}

func fillString(target *string, defaultValue string) {
	if *target == "" {
		*target = defaultValue
	}
}
