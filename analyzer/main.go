package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/analyzer/config"
	"bikeshare/communication"
	"bikeshare/domain/business/filter"
	"bikeshare/reporter"
	"bikeshare/utils"
)

const (
	logLevelEnv   = "LOG_LEVEL"
	configPathEnv = "CONFIG_PATH"
	cityEnv       = "CITY"
	monthEnv      = "MONTH"
	dayEnv        = "DAY"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func main() {
	logLevel := os.Getenv(logLevelEnv)
	if logLevel == "" {
		logLevel = "INFO"
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = config.DefaultConfigFilepath
	}

	analyzerConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Errorf("[analyzer] error loading config: %s", err.Error())
		return
	}

	var extraReporters []reporter.Reporter
	if analyzerConfig.Publisher.Enabled {
		rabbitMQ, err := communication.NewRabbitMQ(analyzerConfig.RabbitURL)
		if err != nil {
			log.Errorf("[analyzer] error getting RabbitMQ instance: %s", err.Error())
			return
		}

		defer func(rabbitMQ *communication.RabbitMQ) {
			err := rabbitMQ.KillBadBunny()
			if err != nil {
				log.Errorf("[analyzer] error killing RabbitMQ instance: %s", err.Error())
			}
		}(rabbitMQ)

		publisher := reporter.NewPublisher(rabbitMQ, analyzerConfig.Publisher)
		err = publisher.DeclareTopology()
		if err != nil {
			log.Errorf("[analyzer] error declaring publisher topology: %s", err.Error())
			return
		}
		extraReporters = append(extraReporters, publisher)
	}

	analyzer := NewAnalyzer(analyzerConfig, os.Stdin, os.Stdout, extraReporters...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, analyzer)
	}()

	signalChannel := utils.GetSignalChannel()
	select {
	case err = <-done:
		if err != nil {
			log.Errorf("[analyzer] error running analyzer: %s", err.Error())
		}
	case sig := <-signalChannel:
		log.Infof("[analyzer] signal %s received, shutting down", sig)
		cancel()
	}

	log.Debug("[analyzer] Finish main.go")
}

// run analyzes the city of the CITY env var once, if it's set. Otherwise, the analyzer asks
// for the city and the filter interactively
func run(ctx context.Context, analyzer *Analyzer) error {
	city := os.Getenv(cityEnv)
	if city == "" {
		return analyzer.Run(ctx)
	}

	spec, err := filter.NewFilterSpec(envOrAll(monthEnv), envOrAll(dayEnv))
	if err != nil {
		return err
	}

	_, err = analyzer.Analyze(ctx, city, spec)
	return err
}

func envOrAll(key string) string {
	value := os.Getenv(key)
	if value == "" {
		return filter.All
	}
	return value
}
