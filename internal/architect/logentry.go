package architect

import "strings"

// Severity of a builder log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// Returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// A single leveled message produced by the delegated builder.
//
// Entries are transformed, not stored: each one is handed to the sink as
// soon as it is read from the builder's output.
type Entry struct {
	Level   Level  // Severity reported by the builder.
	Message string // Message text, without trailing newline.
}

// Receives builder log entries as they are produced.
//
// Emit is called synchronously from the goroutine reading builder output;
// implementations must not block indefinitely.
type Sink interface {
	Emit(Entry)
}

// Classifies one line of builder output into a log level.
//
// The Angular CLI prefixes diagnostics with "Error:" and "Warning:"; webpack
// stats lines use uppercase markers. Everything else on stdout is
// informational, and unmatched stderr lines are warnings.
func classifyLine(line string, stderr bool) Level {
	switch {
	case strings.Contains(line, "ERROR") || strings.HasPrefix(line, "Error:"):
		return LevelError
	case strings.Contains(line, "WARNING") || strings.HasPrefix(line, "Warning:"):
		return LevelWarn
	case stderr:
		return LevelWarn
	default:
		return LevelInfo
	}
}
