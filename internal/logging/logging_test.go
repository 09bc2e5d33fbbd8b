package logging

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "select.log")
	logger, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	logger.WithField("select", "abc").Debug("panel toggled")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "panel toggled", entry["msg"])
	assert.Equal(t, "abc", entry["select"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, err := New(Options{Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	logger.Warn("dropped")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.Equal(t, io.Discard, logger.Out)
	logger.Error("dropped")
}
