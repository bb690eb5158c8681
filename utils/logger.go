package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InfoLogger carries request and state-change lines; ErrorLogger carries
// failures, including side effects that failed after a successful write.
var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// InitLogger must run before any handler or service logs.
func InitLogger() {
	InfoLogger = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)
}

// SilenceLogger installs both loggers with output discarded.
func SilenceLogger() {
	InfoLogger = newLogger(io.Discard, logrus.InfoLevel)
	ErrorLogger = newLogger(io.Discard, logrus.ErrorLevel)
}
