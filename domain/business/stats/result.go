package stats

import "fmt"

// Status tells if a statistic has a value
type Status int

const (
	// Available the statistic has a value
	Available Status = iota
	// EmptyResult the statistic has no value because there are no trips to compute it with
	EmptyResult
	// Unavailable the statistic cannot be computed because its column is not in the dataset
	Unavailable
)

var statusNames = map[Status]string{
	Available:   "available",
	EmptyResult: "empty",
	Unavailable: "unavailable",
}

func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return name
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidStatus, string(text))
}

// Result value of a statistic. Value is only meaningful when Status is Available
type Result[T any] struct {
	Status Status `json:"status"`
	Value  T      `json:"value"`
}

func NewResult[T any](value T) Result[T] {
	return Result[T]{Status: Available, Value: value}
}

func NewEmptyResult[T any]() Result[T] {
	return Result[T]{Status: EmptyResult}
}

func NewUnavailableResult[T any]() Result[T] {
	return Result[T]{Status: Unavailable}
}

// Get returns the value and true if the statistic is Available
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.Status == Available
}

func (r Result[T]) IsAvailable() bool {
	return r.Status == Available
}

// resultOf builds an Available Result if ok is true, and an EmptyResult otherwise
func resultOf[T any](value T, ok bool) Result[T] {
	if !ok {
		return NewEmptyResult[T]()
	}
	return NewResult(value)
}
