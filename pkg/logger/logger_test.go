package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupLoggerWritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SetupLogger(dir, "debug"))
	t.Cleanup(func() {
		mu.Lock()
		if logFile != nil {
			_ = logFile.Close()
			logFile = nil
		}
		base = zap.NewNop()
		sugared = base.Sugar()
		mu.Unlock()
	})

	Info("registry ready with %d sites", 3)
	L().Warn("structured", zap.String("prefix", "NM"))
	Sync()

	raw, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"registry ready with 3 sites"`)
	assert.Contains(t, lines[1], `"prefix":"NM"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[1], "logger_test.go")
}

func TestSetupLoggerLevelFilters(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SetupLogger(dir, "error"))
	t.Cleanup(func() {
		mu.Lock()
		_ = logFile.Close()
		logFile = nil
		base = zap.NewNop()
		sugared = base.Sugar()
		mu.Unlock()
	})

	Info("dropped")
	Warning("dropped too")
	Error("kept")
	Sync()

	raw, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "dropped")
	assert.Contains(t, string(raw), "kept")
}

func TestNopBeforeSetup(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("nothing configured")
		L().Info("still fine")
	})
}
