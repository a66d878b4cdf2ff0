package log

import (
	"log/slog"
	"os"
)

// Logger is the process-wide structured logger. Replay workers and the
// catalog fetcher log through the package-level functions so the output
// destination can be swapped once at startup.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

var globalLogger *Logger

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	globalLogger = &Logger{
		logger: slog.New(handler),
		file:   os.Stderr,
	}
}

// SetFileOutput redirects all logging to the named file, closing any
// previously opened log file.
func SetFileOutput(filename string) error {
	logger, err := NewLogger(filename)
	if err != nil {
		return err
	}

	if globalLogger != nil && globalLogger.file != os.Stderr && globalLogger.file != os.Stdout {
		globalLogger.file.Close()
	}

	globalLogger = logger
	return nil
}

// NewLogger creates a logger appending to the named file at debug
// level.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})

	return &Logger{
		logger: slog.New(handler),
		file:   file,
	}, nil
}

func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}

// Close closes the log file, if one was opened.
func Close() {
	if globalLogger != nil && globalLogger.file != os.Stderr && globalLogger.file != os.Stdout {
		globalLogger.file.Close()
	}
}
