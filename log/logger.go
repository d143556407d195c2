// Package log provides a categorized logger for the keyboard switcher,
// wrapping a logrus logger the host already owns.
package log

import (
	"io"
	"regexp"

	"github.com/sirupsen/logrus"
)

// Logger tags every entry with a category so host logs can be filtered down
// to, say, the shift protocol or the layout cache.
type Logger struct {
	*logrus.Logger
	categoryFilter *regexp.Regexp
}

// NewNullLogger returns a logger that discards everything. Used in tests and
// as the fallback when the host passes no logger.
func NewNullLogger() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return New(l)
}

// New wraps the given logrus logger.
func New(logger *logrus.Logger) *Logger {
	return &Logger{Logger: logger}
}

// SetCategoryFilter compiles filter and drops entries whose category does
// not match. An empty filter clears it.
func (l *Logger) SetCategoryFilter(filter string) error {
	if filter == "" {
		l.categoryFilter = nil
		return nil
	}
	re, err := regexp.Compile(filter)
	if err != nil {
		return err
	}
	l.categoryFilter = re
	return nil
}

// Debugf logs a debug message under category.
func (l *Logger) Debugf(category, msg string, args ...interface{}) {
	l.logf(logrus.DebugLevel, category, msg, args...)
}

// Infof logs an info message under category.
func (l *Logger) Infof(category, msg string, args ...interface{}) {
	l.logf(logrus.InfoLevel, category, msg, args...)
}

// Warnf logs a warning under category.
func (l *Logger) Warnf(category, msg string, args ...interface{}) {
	l.logf(logrus.WarnLevel, category, msg, args...)
}

// Errorf logs an error under category.
func (l *Logger) Errorf(category, msg string, args ...interface{}) {
	l.logf(logrus.ErrorLevel, category, msg, args...)
}

func (l *Logger) logf(level logrus.Level, category, msg string, args ...interface{}) {
	if l.categoryFilter != nil && !l.categoryFilter.MatchString(category) {
		return
	}
	l.WithField("category", category).Logf(level, msg, args...)
}

// DebugMode returns true if the logger level is set to Debug or higher.
func (l *Logger) DebugMode() bool {
	return l.Logger.GetLevel() >= logrus.DebugLevel
}
