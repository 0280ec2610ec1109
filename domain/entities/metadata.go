package entities

import "time"

// Metadata extra information about a message that leaves the analyzer
// + City: city which belongs the data
// + Type: type of the data, it helps consumers to know how to decode the message
// + Stage: component that built the message
// + Message: human readable description of the data
// + CreatedAt: moment in which the message was built
type Metadata struct {
	City      string    `json:"city"`
	Type      string    `json:"type"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMetadata(city string, dataType string, stage string, message string) Metadata {
	return Metadata{
		City:      city,
		Type:      dataType,
		Stage:     stage,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}
