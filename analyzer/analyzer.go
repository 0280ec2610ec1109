package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/analyzer/config"
	"bikeshare/domain/business/filter"
	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities/dataset"
	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/reporter"
)

const (
	greeting         = "Hello! Let's explore some US bikeshare data!\n"
	previewQuestion  = "\nWould you like to view %d rows of individual trip data? Enter yes or no.\n"
	continueQuestion = "Do you wish to continue?: "
	restartQuestion  = "\nWould you like to restart? Enter yes or no.\n"
	noMoreRows       = "No more trips to show.\n"
)

// Analyzer runs the analysis of a city: it loads the trips file, applies the filter,
// computes the statistics and hands the report to every reporter
type Analyzer struct {
	config     *config.AnalyzerConfig
	tripLoader *loader.TripLoader
	console    *reporter.Console
	reporters  []reporter.Reporter
	prompter   *prompt.Prompter
	writer     io.Writer
}

// NewAnalyzer creates an Analyzer that prints in writer. The console is always the first reporter;
// extraReporters, such as the publisher, receive the report afterwards
func NewAnalyzer(analyzerConfig *config.AnalyzerConfig, reader io.Reader, writer io.Writer, extraReporters ...reporter.Reporter) *Analyzer {
	console := reporter.NewConsole(writer)
	return &Analyzer{
		config:     analyzerConfig,
		tripLoader: loader.NewTripLoader(analyzerConfig.Loader),
		console:    console,
		reporters:  append([]reporter.Reporter{console}, extraReporters...),
		prompter:   prompt.NewPrompter(reader, writer, analyzerConfig.GetCityNames()),
		writer:     writer,
	}
}

func (a *Analyzer) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: analyzer][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: analyzer][method: %s][status: OK] %s", method, message)
}

// Analyze computes and reports the statistics of the trips of city that match spec.
// The filtered dataset is returned so its rows can be previewed.
func (a *Analyzer) Analyze(ctx context.Context, city string, spec filter.FilterSpec) (*dataset.Dataset, error) {
	tripsFilepath, err := a.config.GetCityFilepath(city)
	if err != nil {
		return nil, err
	}

	ds, err := a.tripLoader.LoadFile(tripsFilepath, city)
	if err != nil {
		log.Error(a.getLogMessage("Analyze", fmt.Sprintf("error loading trips of %s", city), err))
		return nil, err
	}

	filtered := filter.Apply(ds, spec)
	log.Debug(a.getLogMessage("Analyze", fmt.Sprintf("%d of %d trips of %s match %s", filtered.Len(), ds.Len(), city, spec), nil))

	report := stats.Aggregate(filtered, spec)

	err = a.console.Report(ctx, report)
	if err != nil {
		return nil, err
	}

	// a report that can't be published is logged, the run goes on
	for _, extraReporter := range a.reporters[1:] {
		err = extraReporter.Report(ctx, report)
		if err != nil {
			log.Error(a.getLogMessage("Analyze", "error sending report", err))
		}
	}

	return filtered, nil
}

// Run asks for a city and a filter, analyzes them and offers the preview of the raw rows,
// until the user does not want to restart or the input ends
func (a *Analyzer) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := a.runOnce(ctx)
		if errors.Is(err, io.EOF) {
			log.Debug(a.getLogMessage("Run", "end of input", nil))
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := a.prompter.AskYesNo(restartQuestion)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if !restart {
			return nil
		}
	}
}

func (a *Analyzer) runOnce(ctx context.Context) error {
	if _, err := io.WriteString(a.writer, greeting); err != nil {
		return err
	}

	city, err := a.prompter.AskCity()
	if err != nil {
		return err
	}

	spec, err := a.prompter.AskFilter()
	if err != nil {
		return err
	}

	filtered, err := a.Analyze(ctx, city, spec)
	var loadError *loader.LoadError
	if errors.As(err, &loadError) {
		_, err = fmt.Fprintf(a.writer, "\nThe trips of %s could not be loaded: %s\n", city, loadError.Error())
		return err
	}
	if err != nil {
		return err
	}

	return a.preview(filtered)
}

// preview shows pages of PreviewSize raw rows while the user asks for them
func (a *Analyzer) preview(filtered *dataset.Dataset) error {
	pageSize := a.config.PreviewSize
	showRows, err := a.prompter.AskYesNo(fmt.Sprintf(previewQuestion, pageSize))
	if err != nil {
		return err
	}

	start := 0
	for showRows {
		rows := filtered.Page(start, pageSize)
		if len(rows) == 0 {
			_, err = io.WriteString(a.writer, noMoreRows)
			return err
		}

		err = a.console.RenderRows(rows, filtered.GetSchema())
		if err != nil {
			return err
		}
		start += pageSize

		showRows, err = a.prompter.AskYesNo(continueQuestion)
		if err != nil {
			return err
		}
	}
	return nil
}
