package logbridge

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/scaffoldly/serverless-angular/internal"
	"github.com/scaffoldly/serverless-angular/internal/architect"
)

// The four-channel logging surface offered by the host tool.
type HostLogger interface {
	Verbose(msg string)
	Log(msg string)
	Warning(msg string)
	Error(msg string)
}

// Translates builder log entries onto a host logger.
//
// Bridge implements [architect.Sink]. It holds no state beyond the logger
// and the tag, so a single bridge may serve any number of runs.
type Bridge struct {
	logger HostLogger
	tag    string
}

// Creates a bridge over the given host logger.
//
// A nil logger selects the console fallback.
func New(logger HostLogger) *Bridge {
	if logger == nil {
		logger = Console()
	}
	return &Bridge{
		logger: logger,
		tag:    internal.Name,
	}
}

// Forwards one builder entry to the host logger.
//
// The level mapping is total: every builder severity lands on exactly one
// host channel, and unrecognized severities land on the default channel.
func (b *Bridge) Emit(entry architect.Entry) {
	msg := b.prefix(entry.Message)

	switch entry.Level {
	case architect.LevelDebug:
		b.logger.Verbose(msg)
	case architect.LevelInfo:
		b.logger.Log(msg)
	case architect.LevelWarn:
		b.logger.Warning(msg)
	case architect.LevelError, architect.LevelFatal:
		b.logger.Error(msg)
	default:
		b.logger.Log(msg)
	}
}

// Writes a verbose message through the bridge.
func (b *Bridge) Verbose(format string, a ...any) {
	b.logger.Verbose(b.prefix(fmt.Sprintf(format, a...)))
}

// Writes a default-level message through the bridge.
func (b *Bridge) Log(format string, a ...any) {
	b.logger.Log(b.prefix(fmt.Sprintf(format, a...)))
}

// Writes a warning through the bridge.
func (b *Bridge) Warning(format string, a ...any) {
	b.logger.Warning(b.prefix(fmt.Sprintf(format, a...)))
}

// Writes an error through the bridge.
func (b *Bridge) Error(format string, a ...any) {
	b.logger.Error(b.prefix(fmt.Sprintf(format, a...)))
}

// Prefixes a message with the plugin tag.
func (b *Bridge) prefix(msg string) string {
	return b.tag + ": " + msg
}

// Adapts a structured logger to the host logging surface.
//
// Used when the plugin runs standalone and the host process is not present
// to supply its own logger.
type slogLogger struct {
	logger *slog.Logger
}

// Returns a host logger backed by the given structured logger.
func Slog(logger *slog.Logger) HostLogger {
	return &slogLogger{logger: logger}
}

func (s *slogLogger) Verbose(msg string) { s.logger.Debug(msg) }
func (s *slogLogger) Log(msg string)     { s.logger.Info(msg) }
func (s *slogLogger) Warning(msg string) { s.logger.Warn(msg) }
func (s *slogLogger) Error(msg string)   { s.logger.Error(msg) }

// A console-style fallback sink writing to stderr.
type consoleLogger struct{}

// Returns the console fallback logger.
func Console() HostLogger {
	return consoleLogger{}
}

func (consoleLogger) Verbose(msg string) { fmt.Fprintln(os.Stderr, msg) }
func (consoleLogger) Log(msg string)     { fmt.Fprintln(os.Stderr, msg) }
func (consoleLogger) Warning(msg string) { fmt.Fprintln(os.Stderr, "WARNING: "+msg) }
func (consoleLogger) Error(msg string)   { fmt.Fprintln(os.Stderr, "ERROR: "+msg) }
