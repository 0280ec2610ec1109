package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	values := []string{"chicago", "new york city", "washington"}

	assert.True(t, ContainsString("washington", values))
	assert.False(t, ContainsString("Washington", values))
	assert.False(t, ContainsString("boston", nil))
}

func TestIndexOfFold(t *testing.T) {
	values := []string{"Start Time", "End Time", "Trip Duration"}

	assert.Equal(t, 1, IndexOfFold("end time", values))
	assert.Equal(t, -1, IndexOfFold("Gender", values))
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preview_size: 5\n"), 0o600))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "preview_size: 5\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
