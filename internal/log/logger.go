package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures the optional rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a zerolog logger with the given level string (debug, info, warn, error).
func New(level string) *zerolog.Logger {
	return newLogger(level, os.Stdout, nil)
}

// NewWithFile builds a logger that writes to stdout and, when file.Path is set,
// also to a size-rotated file.
func NewWithFile(level string, file FileOptions) *zerolog.Logger {
	if file.Path == "" {
		return New(level)
	}
	return newLogger(level, os.Stdout, &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
	})
}

func newLogger(level string, console io.Writer, file io.Writer) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
	}
	if file != nil {
		// file gets plain JSON lines
		out = zerolog.MultiLevelWriter(out, file)
	}

	logger := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
	return &logger
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
