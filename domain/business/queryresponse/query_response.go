package queryresponse

import (
	"github.com/google/uuid"

	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities"
)

const reportType = "report"

// QueryResponse contains the statistics computed for a city and a filter
// + QueryID: unique ID of the analysis run
type QueryResponse struct {
	Metadata entities.Metadata `json:"metadata"`
	QueryID  string            `json:"query_id"`
	Report   *stats.Report     `json:"report"`
}

func NewQueryResponse(report *stats.Report, sender string) *QueryResponse {
	metadata := entities.NewMetadata(report.City, reportType, sender, report.Filter.String())
	return &QueryResponse{
		Metadata: metadata,
		QueryID:  uuid.NewString(),
		Report:   report,
	}
}

func (qr *QueryResponse) GetMetadata() entities.Metadata {
	return qr.Metadata
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}
