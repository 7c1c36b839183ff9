package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to out. An empty level falls back to
// SWINGPLAN_LOG_LEVEL and then to warn; an empty format falls back to
// SWINGPLAN_LOG_FORMAT and then to text.
func New(out io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if level == "" {
		level = os.Getenv("SWINGPLAN_LOG_LEVEL")
	}
	if level == "" {
		level = "warn"
	}
	if format == "" {
		format = os.Getenv("SWINGPLAN_LOG_FORMAT")
	}

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	if lvl, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(logrus.WarnLevel)
		log.WithField("invalid_level", level).Warn("invalid log level, using warn")
	}

	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// WithCommand tags entries with the CLI command that produced them.
func WithCommand(log logrus.FieldLogger, name string) *logrus.Entry {
	return log.WithField("command", name)
}
