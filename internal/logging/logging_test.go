package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "coco.log")
	logger, closeFn, err := Setup(path, true)
	require.NoError(t, err)

	logger.Debug("filter applied", "matches", 3)
	slog.Info("session finished")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="filter applied" matches=3`)
	assert.Contains(t, string(data), `msg="session finished"`)
}

func TestSetupInfoLevelDropsDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "coco.log")
	logger, closeFn, err := Setup(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger, closeFn, err := Setup("", false)
	require.NoError(t, err)
	assert.NotPanics(t, func() { logger.Info("nowhere") })
	assert.NoError(t, closeFn())
}

func TestSetupBadPath(t *testing.T) {
	_, _, err := Setup(filepath.Join(t.TempDir(), "missing", "coco.log"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}
