package queryresponse

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/filter"
	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities/dataset"
)

func TestNewQueryResponse(t *testing.T) {
	spec := filter.FilterSpec{Month: "march", Day: "friday"}
	report := stats.Aggregate(dataset.NewDataset("chicago", dataset.Schema{}, nil), spec)

	response := NewQueryResponse(report, "analyzer")

	metadata := response.GetMetadata()
	assert.Equal(t, "chicago", metadata.GetCity())
	assert.Equal(t, "report", metadata.GetType())
	assert.Equal(t, "analyzer", metadata.Stage)
	assert.Equal(t, spec.String(), metadata.Message)
	assert.False(t, metadata.CreatedAt.IsZero())

	_, err := uuid.Parse(response.GetQueryID())
	require.NoError(t, err)
	assert.NotEqual(t, response.GetQueryID(), NewQueryResponse(report, "analyzer").GetQueryID())
}

func TestQueryResponse_JSON(t *testing.T) {
	report := stats.Aggregate(dataset.NewDataset("washington", dataset.Schema{}, nil), filter.NoFilter())

	payload, err := json.Marshal(NewQueryResponse(report, "analyzer"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Contains(t, decoded, "metadata")
	assert.Contains(t, decoded, "query_id")
	reportJSON, ok := decoded["report"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "washington", reportJSON["city"])
}
