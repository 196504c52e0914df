// Package log provides the file-backed application logger. It implements
// domain.Logger on top of charmbracelet/log so log files get consistent
// leveled, timestamped lines.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	clog "github.com/charmbracelet/log"

	"github.com/relay-tools/slashcmd/internal/domain"
)

// Logger writes leveled messages to a file.
type Logger struct {
	mu   sync.Mutex
	l    *clog.Logger
	file *os.File
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// ParseLevel converts a string to a log level. Valid values: "debug",
// "info", "warn", "error" (case insensitive). Unrecognized values fall
// back to warn.
func ParseLevel(s string) clog.Level {
	level, err := clog.ParseLevel(s)
	if err != nil {
		return clog.WarnLevel
	}
	return level
}

// New creates a logger writing to the given file path. The file and its
// directory are created with restrictive permissions.
func New(logPath string, minLevel clog.Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := clog.NewWithOptions(file, clog.Options{
		Level:           minLevel,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})

	return &Logger{l: l, file: file}, nil
}

// Init initializes the global logger. Later calls replace the previous one.
func Init(logPath string, minLevel clog.Level) error {
	l, err := New(logPath, minLevel)
	if err != nil {
		return err
	}
	defaultLoggerMu.Lock()
	defaultLogger = l
	defaultLoggerMu.Unlock()
	return nil
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Debug writes a debug message.
func (l *Logger) Debug(format string, args ...any) {
	if l != nil {
		l.l.Debugf(format, args...)
	}
}

// Info writes an informational message.
func (l *Logger) Info(format string, args ...any) {
	if l != nil {
		l.l.Infof(format, args...)
	}
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...any) {
	if l != nil {
		l.l.Warnf(format, args...)
	}
}

// Error writes an error message.
func (l *Logger) Error(format string, args ...any) {
	if l != nil {
		l.l.Errorf(format, args...)
	}
}

// Global convenience helpers. They are no-ops until Init succeeds.

func Debug(format string, args ...any) { global().Debug(format, args...) }
func Info(format string, args ...any)  { global().Info(format, args...) }
func Warn(format string, args ...any)  { global().Warn(format, args...) }
func Error(format string, args ...any) { global().Error(format, args...) }

// Close closes the global logger.
func Close() error {
	l := global()
	if l != nil {
		return l.Close()
	}
	return nil
}

func global() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

// Verify Logger implements domain.Logger
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
