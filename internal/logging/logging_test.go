package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productionLogger(buf *bytes.Buffer) *AppLogger {
	logger := log.NewWithOptions(buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(log.DebugLevel)
	return &AppLogger{logger: logger, debug: false}
}

func TestDebug_DisabledInProduction(t *testing.T) {
	var buf bytes.Buffer
	appLogger := productionLogger(&buf)

	appLogger.Debug("debug message that should not appear")

	assert.NotContains(t, buf.String(), "debug message that should not appear")
}

func TestLogMessage(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.LogMessage(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Contains(t, buf.String(), "Message received")
	assert.Contains(t, buf.String(), "tea.KeyMsg")
}

func TestLogMessage_DisabledInProduction(t *testing.T) {
	var buf bytes.Buffer
	appLogger := productionLogger(&buf)

	appLogger.LogMessage(tea.KeyMsg{Type: tea.KeySpace})

	assert.NotContains(t, buf.String(), "Message received")
}

func TestLogUserActionAndTransition(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.LogUserAction("option_selected", "Color scheme/Dark Grey")
	logger.LogStateTransition("SettingsDialog", "Categories", "Options")

	out := buf.String()
	assert.Contains(t, out, "User action")
	assert.Contains(t, out, "option_selected")
	assert.Contains(t, out, "State transition")
	assert.Contains(t, out, "Options")
}

func TestLevelsAlwaysWritten(t *testing.T) {
	var buf bytes.Buffer
	appLogger := productionLogger(&buf)

	appLogger.Info("info line")
	appLogger.Warn("warn line")
	appLogger.Error("error line", "error", os.ErrNotExist)

	out := buf.String()
	assert.Contains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestNewAppLogger_DebugWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")

	logger := NewAppLogger(Options{Debug: true, LogPath: logPath})
	require.True(t, logger.IsDebug())

	logger.Debug("hello from test")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close(), "second close is a no-op")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug logging enabled")
	assert.Contains(t, string(data), "hello from test")
}

func TestNewAppLogger_UnwritablePathFallsBack(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "missing", "dir", "debug.log")

	logger := NewAppLogger(Options{Debug: true, LogPath: logPath})

	assert.False(t, logger.IsDebug())
	assert.NoError(t, logger.Close())
}

func TestGetDefault_NeverOpensDebugFile(t *testing.T) {
	t.Setenv("DEBUG", "1")
	SetDefault(nil)
	t.Cleanup(func() { SetDefault(nil) })

	assert.False(t, GetDefault().IsDebug())
}

func TestSetDefault_SharesTheAppLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	app := NewAppLogger(Options{Debug: true, LogPath: logPath})
	SetDefault(app)
	t.Cleanup(func() { SetDefault(nil) })

	app.Info("first app line")
	Debug("config read", "path", "/tmp/config.yaml")
	app.Info("second app line")
	require.NoError(t, app.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "first app line")
	assert.Contains(t, out, "config read")
	assert.Contains(t, out, "second app line")
	assert.NotContains(t, out, "\x00")
}
