package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var defaultLogger = &logrus.Logger{
	Out:       os.Stdout,
	Formatter: new(logrus.JSONFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
	ExitFunc:  os.Exit,
}

// Fields is a set of structured log fields.
type Fields = logrus.Fields

// SetLevel changes the logging level. Unknown levels keep the current one.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		defaultLogger.Warnf("unknown log level %q, keeping %s", level, defaultLogger.GetLevel())
		return
	}
	defaultLogger.SetLevel(lvl)
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return defaultLogger.WithFields(fields)
}

// Writer returns a pipe writing each line at Info level.
func Writer() *io.PipeWriter {
	return defaultLogger.Writer()
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Infof logs formatted message at Info level.
func Infof(format string, args ...interface{}) {
	defaultLogger.Infof(format, args...)
}

// Warn logs message at Warn level.
func Warn(msg string) {
	defaultLogger.Warnln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
