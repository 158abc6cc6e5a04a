package ports

import "strings"

// LogLevel orders log messages by severity.
type LogLevel int

const (
	// LevelDebug covers stage and engine internals.
	LevelDebug LogLevel = iota
	// LevelInfo covers orchestrator progress.
	LevelInfo
	// LevelWarn covers problems the export survives, such as a slow image
	// or a debug artifact that could not be saved.
	LevelWarn
	// LevelError covers failed exports.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = []string{"debug", "info", "warn", "error", "quiet"}

func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelQuiet {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name case-insensitively. "warning" is
// accepted for warn; anything unknown is info.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn
	}
	for i, name := range levelNames {
		if name == s {
			return LogLevel(i)
		}
	}
	return LevelInfo
}

// Logger is the logging port. msg is a go-l10n lexicon key used as a
// format string; implementations translate it before printing.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes lines with component.
	// Stages and engines log through component loggers.
	WithComponent(component string) Logger
}
