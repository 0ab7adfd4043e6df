package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	prev := L
	t.Cleanup(func() { L = prev })
}

func TestInit_DisabledDiscards(t *testing.T) {
	restoreLogger(t)

	closer, err := Init(Options{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.False(t, L.Enabled(t.Context(), slog.LevelError), "disabled logger should drop every level")
}

func TestInit_WriterText(t *testing.T) {
	restoreLogger(t)

	var out bytes.Buffer
	_, err := Init(Options{Enabled: true, Output: &out, Level: slog.LevelDebug})
	require.NoError(t, err)

	L.Debug("vector grow", "from", 2, "to", 4)
	assert.Contains(t, out.String(), "msg=\"vector grow\"")
	assert.Contains(t, out.String(), "to=4")
}

func TestInit_WriterJSONRespectsLevel(t *testing.T) {
	restoreLogger(t)

	var out bytes.Buffer
	_, err := Init(Options{Enabled: true, Output: &out, Level: slog.LevelWarn, JSON: true})
	require.NoError(t, err)

	L.Info("dropped")
	L.Warn("kept", "bytes", 64)
	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), `"msg":"kept"`)
	assert.Contains(t, out.String(), `"bytes":64`)
}

func TestInit_LogDirCreatesDailyFile(t *testing.T) {
	restoreLogger(t)

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := Init(Options{Enabled: true, LogDir: dir})
	require.NoError(t, err)

	L.Info("hello")
	require.NoError(t, closer.Close())

	name := filepath.Join(dir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	old := logPrefix + now.AddDate(0, 0, -retentionDays-1).Format("2006-01-02") + logSuffix
	recent := logPrefix + now.AddDate(0, 0, -1).Format("2006-01-02") + logSuffix
	other := "unrelated.log"
	for _, name := range []string{old, recent, other} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	cleanOldLogs(dir, now)

	assert.NoFileExists(t, filepath.Join(dir, old))
	assert.FileExists(t, filepath.Join(dir, recent))
	assert.FileExists(t, filepath.Join(dir, other))
}
