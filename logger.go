package blnk

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the observability sink consumed by the client. Failures in
// logging never affect call outcomes.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

type consoleLogger struct {
	log zerolog.Logger
}

// NewConsoleLogger returns the default logger: a zerolog console writer with
// bracketed levels and RFC3339 timestamps. Setting the DEBUG environment
// variable lowers the level to debug.
func NewConsoleLogger() Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i any) string {
		return fmt.Sprintf("[%s]", i)
	}
	output.FormatMessage = func(i any) string {
		return fmt.Sprintf("%s", i)
	}

	log := zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if _, exists := os.LookupEnv("DEBUG"); exists {
		log = log.Level(zerolog.DebugLevel)
	}

	return &consoleLogger{log: log}
}

// NewZerologLogger wraps an existing zerolog logger in the Logger contract.
func NewZerologLogger(log zerolog.Logger) Logger {
	return &consoleLogger{log: log}
}

func (l *consoleLogger) Info(msg string, args ...any) {
	l.log.Info().Msgf(msg, args...)
}

func (l *consoleLogger) Warn(msg string, args ...any) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *consoleLogger) Error(msg string, args ...any) {
	l.log.Error().Msgf(msg, args...)
}

func (l *consoleLogger) Debug(msg string, args ...any) {
	l.log.Debug().Msgf(msg, args...)
}
