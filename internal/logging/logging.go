// Package logging wraps charmbracelet/log with the few helpers the TUI needs.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const logFileName = "tubedeck/tubedeck.log"

// Options controls how NewAppLogger builds the underlying logger.
type Options struct {
	// Debug enables debug level output to a log file. The DEBUG environment
	// variable turns it on as well.
	Debug bool
	// LogPath overrides the debug log location (XDG state dir by default).
	LogPath string
}

type AppLogger struct {
	logger *log.Logger
	debug  bool
	closer io.Closer
}

var (
	defaultMu     sync.Mutex
	defaultLogger *AppLogger
)

// GetDefault returns the package level logger. Until SetDefault is called it
// is a warn level stderr logger; it never opens the debug log file, which
// belongs to the application's logger.
func GetDefault() *AppLogger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = newStderrLogger()
	}
	return defaultLogger
}

// SetDefault routes the package level helpers to l. Passing nil restores the
// stderr logger.
func SetDefault(l *AppLogger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions for quick logging
func Info(msg string, keyvals ...interface{}) {
	GetDefault().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	GetDefault().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	GetDefault().Error(msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	GetDefault().Debug(msg, keyvals...)
}

func NewAppLogger(opts Options) *AppLogger {
	debug := opts.Debug || os.Getenv("DEBUG") != ""

	if debug {
		logPath := opts.LogPath
		if logPath == "" {
			p, err := xdg.StateFile(logFileName)
			if err != nil {
				return newStderrLogger()
			}
			logPath = p
		}

		// Truncated on every run so a session's log reads top to bottom
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			fallback := newStderrLogger()
			fallback.Warn("Debug log file unavailable, logging to stderr", "path", logPath, "error", err)
			return fallback
		}

		logger := log.NewWithOptions(logFile, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "Tubedeck",
		})
		logger.SetLevel(log.DebugLevel)
		logger.Info("Debug logging enabled", "log_file", logPath)

		return &AppLogger{
			logger: logger,
			debug:  true,
			closer: logFile,
		}
	}

	return newStderrLogger()
}

// newStderrLogger logs warnings and errors only; stdout stays free for the
// MCP transport and command output.
func newStderrLogger() *AppLogger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "Tubedeck",
	})
	logger.SetLevel(log.WarnLevel)

	return &AppLogger{logger: logger}
}

// Close releases the debug log file, if one was opened.
func (al *AppLogger) Close() error {
	if al.closer == nil {
		return nil
	}
	err := al.closer.Close()
	al.closer = nil
	return err
}

// IsDebug reports whether debug logging is active.
func (al *AppLogger) IsDebug() bool {
	return al.debug
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	if al.debug {
		al.logger.Debug(msg, keyvals...)
	}
}

// LogMessage records a bubbletea message (debug only).
func (al *AppLogger) LogMessage(msg tea.Msg) {
	if !al.debug {
		return
	}

	al.logger.Debug("Message received",
		"type", fmt.Sprintf("%T", msg),
		"content", fmt.Sprintf("%+v", msg),
	)
}

func (al *AppLogger) LogStateTransition(component, from, to string) {
	if al.debug {
		al.logger.Debug("State transition",
			"component", component,
			"from", from,
			"to", to,
		)
	}
}

// LogUserAction records a user selection, e.g. a settings option being toggled.
func (al *AppLogger) LogUserAction(action, context string) {
	if al.debug {
		al.logger.Debug("User action",
			"action", action,
			"context", context,
		)
	}
}

// NewTestLogger creates a debug logger that writes to a buffer.
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "Test",
	})
	logger.SetLevel(log.DebugLevel)

	return &AppLogger{
		logger: logger,
		debug:  true,
	}, &buf
}
