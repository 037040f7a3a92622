// Package logging builds the zerolog logger shared by the application.
// Console output goes through a ConsoleWriter; a per-session file under the
// logs directory can be attached as a second sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLogsDir is where session log files are written, relative to the
// working directory.
const DefaultLogsDir = "logs"

// ParseLevel maps a config level string to a zerolog level. Unknown strings
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger at the given level writing human-readable lines to
// console, plus JSON lines to each extra sink (e.g. a session file).
func New(level string, console io.Writer, extra ...io.Writer) zerolog.Logger {
	writers := make([]io.Writer, 0, 1+len(extra))
	writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly})
	writers = append(writers, extra...)
	var out io.Writer = writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// SessionFilePath builds the log file path for a session started at start,
// with OS-appropriate separators.
func SessionFilePath(logsDir string, start time.Time) string {
	return filepath.Join(logsDir, fmt.Sprintf("puzzle.%s.log", start.Format("20060102_150405")))
}

// OpenSessionFile creates the logs directory if needed and opens the session
// file for appending.
func OpenSessionFile(logsDir string, start time.Time) (*os.File, error) {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("creating logs dir: %w", err)
	}
	return os.OpenFile(SessionFilePath(logsDir, start), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
