// Package logger provides the leveled logger used by the command-line tool.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface the command-line tool depends on.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

// New returns a Logger writing plain text lines to w.  Debug messages are
// dropped unless verbose is set.
func New(w io.Writer, verbose bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

var _ Logger = (*logrus.Logger)(nil)
