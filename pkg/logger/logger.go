package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// FormatJSON emits one JSON object per record.
	FormatJSON = "json"
	// FormatText emits logfmt style records.
	FormatText = "text"
)

// Options describes how the process logs.
type Options struct {
	// Module and Version are attached to every record.
	Module  string
	Version string
	// Level is one of debug, info, warn or error. Unrecognized values mean info.
	Level string
	// Format is FormatJSON (default) or FormatText.
	Format string
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// New creates a structured logger from opts.
// AddSource is enabled for debug level logging only.
func New(opts Options) *slog.Logger {
	lev := ParseLogLevel(opts.Level)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	ho := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(opts.Format, FormatText) {
		h = slog.NewTextHandler(w, ho)
	} else {
		h = slog.NewJSONHandler(w, ho)
	}

	l := slog.New(h)
	if opts.Module != "" {
		l = l.With("module", opts.Module, "version", opts.Version)
	}
	return l
}

// NewStructuredLogger creates a JSON logger on stderr with the module name
// and version in its context.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return New(Options{Module: module, Version: version, Level: level})
}

// NewLogLogger bridges a standard library log.Logger onto slog, used for
// http.Server error logs.
func NewLogLogger(l *slog.Logger, level slog.Level) *log.Logger {
	if l == nil {
		l = slog.Default()
	}
	return slog.NewLogLogger(l.Handler(), level)
}

// SetDefault installs a logger built from opts as the slog default and returns it.
// An empty level falls back to the LOG_LEVEL environment variable.
func SetDefault(opts Options) *slog.Logger {
	if opts.Level == "" {
		opts.Level = os.Getenv(EnvVarLogLevel)
	}
	l := New(opts)
	slog.SetDefault(l)
	return l
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	var lev slog.Level

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lev = slog.LevelDebug
	case "warn", "warning":
		lev = slog.LevelWarn
	case "error":
		lev = slog.LevelError
	default:
		lev = slog.LevelInfo
	}

	return lev
}
