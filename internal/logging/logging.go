// Package logging writes the append-only operation log. Lines have the form
//
//	[2006-01-02 15:04:05] LEVEL: message
//
// A logger that cannot write never fails its caller: write errors are
// swallowed and the log call is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger appends timestamped lines to a log file.
type Logger struct {
	zl   zerolog.Logger
	path string
}

// New creates a logger appending to the file at path. The parent directory
// is created if missing. The file is opened per write, so no handle is held
// between log calls.
func New(path string) *Logger {
	if dir := filepath.Dir(path); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}

	cw := zerolog.ConsoleWriter{
		Out:        appendWriter{path: path},
		NoColor:    true,
		PartsOrder: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatTimestamp: func(i interface{}) string {
			return "[" + fmt.Sprint(i) + "]"
		},
		FormatLevel: func(i interface{}) string {
			level := strings.ToUpper(fmt.Sprint(i))
			if level == "WARN" {
				level = "WARNING"
			}
			return level + ":"
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprint(i)
		},
	}

	zerolog.TimeFieldFormat = timeFormat

	return &Logger{
		zl:   zerolog.New(cw).With().Timestamp().Logger(),
		path: path,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Warning logs a warning.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Error logs an error.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Tail returns the last n lines of the log file, oldest first. A missing or
// unreadable log yields an empty slice.
func (l *Logger) Tail(n int) []string {
	if l.path == "" || n <= 0 {
		return nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

// appendWriter opens, appends and closes the log file on every write.
// Failures are reported as success so a full disk or unwritable path never
// aborts the operation being logged.
type appendWriter struct {
	path string
}

func (w appendWriter) Write(p []byte) (int, error) {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return len(p), nil
	}
	defer f.Close()

	_, _ = f.Write(p)
	return len(p), nil
}
