package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the leveled logging capability handed to every component.
// One instance is built at startup and injected; nothing in the
// application writes through a package-level logger.
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
}

type zerologLogger struct {
	log zerolog.Logger
}

// New builds a zerolog-backed Logger. In development output goes through
// the console writer, otherwise JSON to stderr.
func New(env string) Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	out := zerolog.New(os.Stderr)
	if env == "development" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return &zerologLogger{
		log: out.Level(zerolog.InfoLevel).With().Timestamp().Logger(),
	}
}

// NewNop returns a Logger that discards everything. Used in tests.
func NewNop() Logger {
	return &zerologLogger{log: zerolog.Nop()}
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, err error) {
	l.log.Error().Err(err).Msg(msg)
}
