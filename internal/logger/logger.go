package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	once         sync.Once
)

// InitLogging configures the global zerolog logger. Output goes to stdout and,
// when logFilePath is set, is appended to that file as well. An unknown level
// falls back to info.
func InitLogging(logFilePath, level string) {
	InitLoggingTo(os.Stdout, logFilePath, level)
}

// InitLoggingTo is InitLogging with console output sent to w instead of stdout.
func InitLoggingTo(w io.Writer, logFilePath, level string) {
	once.Do(func() {
		SetLogger(newLogger(w, logFilePath, level))
	})
}

func newLogger(w io.Writer, logFilePath, level string) zerolog.Logger {
	writers := []io.Writer{w}

	if logFilePath != "" {
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
		if err != nil {
			// the logger is not ready yet
			os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
		} else {
			writers = append(writers, file)
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	multi := zerolog.MultiLevelWriter(writers...)
	return zerolog.New(multi).With().Timestamp().Logger().Level(lvl)
}

// SetLogger replaces the global logger. Tests use it to capture output.
func SetLogger(l zerolog.Logger) {
	globalLogger = l
	log.Logger = l
}

// WithLogger returns a new context containing the logger with additional fields.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := getLogger(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

// getLogger extracts the zerolog logger from the context, falling back to the global logger.
func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	// zerolog.Ctx returns a disabled logger if none is in context
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

// DebugLog logs a debug level message.
func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Debug().Msgf(msg, args...)
}

// InfoLog logs an info level message.
func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

// WarnLog logs a warning level message.
func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

// ErrorLog logs an error level message, attaching err when it is not nil.
func ErrorLog(ctx context.Context, err error, msg string, args ...interface{}) {
	ev := getLogger(ctx).Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msgf(msg, args...)
}
