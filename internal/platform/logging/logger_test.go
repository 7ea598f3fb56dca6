package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"cyberdeck/internal/platform/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	level, err := logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	_, err := logging.New(logging.Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "deck.log")
	logger, err := logging.New(logging.Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Info("tick published")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick published")
}

func TestNopDiscards(t *testing.T) {
	t.Parallel()
	logger := logging.NewNop()
	require.NotNil(t, logger.Logger)
	logger.Info("ignored")
}
