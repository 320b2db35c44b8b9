package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dashline/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	t.Parallel()

	logger, closer, err := New(config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	require.NoError(t, closer.Close())
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dash.log")

	logger, closer, err := New(config.LoggingConfig{Level: "info", File: path, MaxSizeMB: 1, MaxFiles: 2})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("archived", zap.String("key", "todos"), zap.Int("count", 3))
	require.NoError(t, logger.Sync())
	require.NoError(t, closer.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.Len(t, lines, 1)
	require.Equal(t, "archived", lines[0]["msg"])
	require.Equal(t, "todos", lines[0]["key"])
	require.Equal(t, "dashline", lines[0]["app"])
	require.EqualValues(t, 3, lines[0]["count"])
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(config.LoggingConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	require.Error(t, err)
}

func TestLogRotationCreatesNewFileAfterOneMiB(t *testing.T) {
	logDir := t.TempDir()
	logPath := filepath.Join(logDir, "dash.log")

	writer, err := NewRotatingWriter(RotationConfig{File: logPath, MaxSizeMB: 1, MaxFiles: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	chunk := bytes.Repeat([]byte("a"), 512*1024)
	for i := 0; i < 3; i++ {
		_, err := writer.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2)
}

func TestRotatingWriterRequiresFile(t *testing.T) {
	t.Parallel()

	_, err := NewRotatingWriter(RotationConfig{})
	require.Error(t, err)
}
