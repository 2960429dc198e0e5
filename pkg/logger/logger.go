package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Setup builds the process-wide logger. In dev mode it writes
// human-readable console output, otherwise JSON lines.
func Setup(levelStr string, dev bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if dev {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return logger
}
