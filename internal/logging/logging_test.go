package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=1")

	m := regexp.MustCompile(`session=(\S+)`).FindStringSubmatch(out)
	require.Len(t, m, 2)
	_, err = uuid.Parse(m[1])
	assert.NoError(t, err)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "taskpad.log")
	logger, closer, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
}

func TestNewDiscard(t *testing.T) {
	logger, closer, err := New(Options{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
