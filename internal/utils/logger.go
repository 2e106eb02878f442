package utils

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger configures the process logger. When file is non-empty, log
// output goes through a lumberjack rotating writer in addition to stdout.
func InitLogger(file string, maxSizeMB, maxBackups, maxAgeDays int, compress bool, level string) {
	var w io.Writer = os.Stdout
	if file != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   compress,
		})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	logger = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}

// SetLogLevel changes the minimum level of the current logger.
func SetLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger = logger.Level(lvl)
}

// SetLoggerForTest replaces the package logger. Tests use this to capture
// output in a buffer.
func SetLoggerForTest(l zerolog.Logger) {
	logger = l
}

func withFields(e *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	return e
}

// Debug logs a debug message with alternating key/value pairs.
func Debug(msg string, kv ...any) {
	withFields(logger.Debug(), kv).Msg(msg)
}

// Info logs an info message with alternating key/value pairs.
func Info(msg string, kv ...any) {
	withFields(logger.Info(), kv).Msg(msg)
}

// Warn logs a warning with alternating key/value pairs.
func Warn(msg string, kv ...any) {
	withFields(logger.Warn(), kv).Msg(msg)
}

// Error logs an error with alternating key/value pairs.
func Error(msg string, kv ...any) {
	withFields(logger.Error(), kv).Msg(msg)
}
