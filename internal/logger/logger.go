package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// log writes to stderr only; stdout belongs to the JSON result.
var log = newLogger(os.Stderr, os.Getenv("DEBUG") == "1", "")

func newLogger(out io.Writer, debug bool, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	l.SetLevel(resolveLevel(debug, level))
	return l
}

// resolveLevel keeps the shim silent unless DEBUG=1 or an explicit level is set.
func resolveLevel(debug bool, level string) logrus.Level {
	if debug {
		return logrus.DebugLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.PanicLevel
	}
	return lvl
}

// Configure replaces the package logger. An empty level keeps the DEBUG env behaviour.
func Configure(out io.Writer, level string) {
	log = newLogger(out, os.Getenv("DEBUG") == "1", level)
}

func DebugLog(format string, args ...any) {
	log.Debugf(format, args...)
}

func WarnLog(format string, args ...any) {
	log.Warnf(format, args...)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// Level reports the active level, mostly for tests.
func Level() logrus.Level {
	return log.GetLevel()
}
