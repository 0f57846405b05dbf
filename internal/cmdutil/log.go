// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// NewLogger builds the per-run stderr logger: Warn by default, Info when
// verbose, Error only when quiet (quiet wins).
func NewLogger(dst io.Writer, quiet, verbose bool) *log.Logger {
	l := log.New()
	l.SetOutput(dst)
	l.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableColors:          true,
		DisableLevelTruncation: true,
	})
	switch {
	case quiet:
		l.SetLevel(log.ErrorLevel)
	case verbose:
		l.SetLevel(log.InfoLevel)
	default:
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// Warnf is a shorthand that tolerates a nil logger.
func Warnf(l log.FieldLogger, format string, a ...any) {
	if l == nil {
		return
	}
	l.Warnf(format, a...)
}
