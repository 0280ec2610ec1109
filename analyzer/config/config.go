package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bikeshare/loader"
	"bikeshare/reporter"
	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./analyzer/config/config.yaml"
	defaultPreviewSize    = 5
	rabbitURLEnv          = "RABBIT_URL"
	datasetsDirEnv        = "DATASETS_DIR"
)

var ErrUnknownCity = errors.New("city is not configured")

// CityConfig trips file of a city
type CityConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// AnalyzerConfig configuration of the analyzer
// + DatasetsDir: directory with the trips files of the cities
// + Cities: cities that can be analyzed, in the order they are offered
// + PreviewSize: amount of raw rows shown per page
// + RabbitURL: url of the broker used by the publisher
type AnalyzerConfig struct {
	DatasetsDir string                   `yaml:"datasets_dir"`
	Cities      []CityConfig             `yaml:"cities"`
	PreviewSize int                      `yaml:"preview_size"`
	Loader      loader.Config            `yaml:"loader"`
	Publisher   reporter.PublisherConfig `yaml:"publisher"`
	RabbitURL   string                   `yaml:"rabbit_url"`
}

// LoadConfig reads the config file in configFilepath. RABBIT_URL and DATASETS_DIR
// env vars override the values of the file
func LoadConfig(configFilepath string) (*AnalyzerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var analyzerConfig AnalyzerConfig
	err = yaml.Unmarshal(configFile, &analyzerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing analyzer config file: %w", err)
	}

	if rabbitURL := os.Getenv(rabbitURLEnv); rabbitURL != "" {
		analyzerConfig.RabbitURL = rabbitURL
	}

	if datasetsDir := os.Getenv(datasetsDirEnv); datasetsDir != "" {
		analyzerConfig.DatasetsDir = datasetsDir
	}

	if analyzerConfig.PreviewSize <= 0 {
		analyzerConfig.PreviewSize = defaultPreviewSize
	}

	for idx := range analyzerConfig.Cities {
		analyzerConfig.Cities[idx].Name = strings.ToLower(strings.TrimSpace(analyzerConfig.Cities[idx].Name))
	}

	return &analyzerConfig, nil
}

// GetCityNames returns the names of the configured cities
func (ac *AnalyzerConfig) GetCityNames() []string {
	names := make([]string, len(ac.Cities))
	for idx := range ac.Cities {
		names[idx] = ac.Cities[idx].Name
	}
	return names
}

// GetCityFilepath returns the path of the trips file of city
func (ac *AnalyzerConfig) GetCityFilepath(city string) (string, error) {
	city = strings.ToLower(strings.TrimSpace(city))
	for idx := range ac.Cities {
		if ac.Cities[idx].Name == city {
			return filepath.Join(ac.DatasetsDir, ac.Cities[idx].File), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
}
