package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bikeshare/domain/business/filter"
	"bikeshare/utils"
)

const (
	monthHint = `Try again. Choose a month between January - June or "All".`
	dayHint   = `Try again. Choose a day of week from Monday to Sunday or "All".`
	yesNoHint = "Please enter yes or no: "
)

var (
	yesAnswers = []string{"yes", "y"}
	noAnswers  = []string{"no", "n"}
)

// Prompter asks questions through writer and reads the answers line by line from reader.
// Every answer is trimmed and lower-cased; invalid answers are asked again.
type Prompter struct {
	scanner *bufio.Scanner
	writer  io.Writer
	cities  []string
}

func NewPrompter(reader io.Reader, writer io.Writer, cities []string) *Prompter {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	return &Prompter{
		scanner: scanner,
		writer:  writer,
		cities:  cities,
	}
}

func (p *Prompter) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: prompt][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: prompt][method: %s][status: OK] %s", method, message)
}

// AskCity returns one of the configured cities
func (p *Prompter) AskCity() (string, error) {
	isValidCity := func(answer string) bool {
		return utils.ContainsString(answer, p.cities)
	}
	return p.ask("\nFirst, let's enter the city name: ", p.cityHint(), "Enter the city name: ", isValidCity)
}

// AskMonth returns one of filter.Months or filter.All
func (p *Prompter) AskMonth() (string, error) {
	return p.ask("\nGreat! Now let's enter the month: ", monthHint, `Enter a month or "all": `, isSelector(filter.Months))
}

// AskDay returns one of filter.Days or filter.All
func (p *Prompter) AskDay() (string, error) {
	return p.ask("\nFinally, let's enter the day of week: ", dayHint, `Enter a day of week or "all": `, isSelector(filter.Days))
}

// AskFilter asks for the month and the day of an analysis run
func (p *Prompter) AskFilter() (filter.FilterSpec, error) {
	month, err := p.AskMonth()
	if err != nil {
		return filter.FilterSpec{}, err
	}

	day, err := p.AskDay()
	if err != nil {
		return filter.FilterSpec{}, err
	}

	return filter.NewFilterSpec(month, day)
}

// AskYesNo writes question and returns true if the answer is yes
func (p *Prompter) AskYesNo(question string) (bool, error) {
	isYesOrNo := func(answer string) bool {
		return utils.ContainsString(answer, yesAnswers) || utils.ContainsString(answer, noAnswers)
	}

	answer, err := p.ask(question, "", yesNoHint, isYesOrNo)
	if err != nil {
		return false, err
	}
	return utils.ContainsString(answer, yesAnswers), nil
}

// ask writes question and reads answers until isValid accepts one. Before reading again,
// hint and retryQuestion are written. io.EOF is returned if the input ends first.
func (p *Prompter) ask(question string, hint string, retryQuestion string, isValid func(string) bool) (string, error) {
	_, err := io.WriteString(p.writer, question)
	if err != nil {
		return "", err
	}

	for {
		answer, err := p.readAnswer()
		if err != nil {
			return "", err
		}

		if isValid(answer) {
			return answer, nil
		}

		log.Debug(p.getLogMessage("ask", fmt.Sprintf("invalid answer %q", answer), nil))
		retry := retryQuestion
		if hint != "" {
			retry = hint + "\n" + retryQuestion
		}

		_, err = io.WriteString(p.writer, retry)
		if err != nil {
			return "", err
		}
	}
}

func (p *Prompter) readAnswer() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			log.Error(p.getLogMessage("readAnswer", "error reading input", err))
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.scanner.Text())), nil
}

// cityHint lists the cities as "Try again. Choose from A, B, or C."
func (p *Prompter) cityHint() string {
	names := make([]string, len(p.cities))
	for idx, city := range p.cities {
		names[idx] = titleCase(city)
	}

	var options string
	switch len(names) {
	case 0:
		options = ""
	case 1:
		options = names[0]
	case 2:
		options = names[0] + " or " + names[1]
	default:
		options = strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
	return fmt.Sprintf("Try again. Choose from %s.", options)
}

func isSelector(values []string) func(string) bool {
	return func(answer string) bool {
		return answer == filter.All || utils.ContainsString(answer, values)
	}
}

func titleCase(value string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(value), " "))
}
