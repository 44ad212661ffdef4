// Package stdlogger adapts the global zerolog logger to printf style
// logging interfaces such as gorm's logger.Writer.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a printf style facade over the global zerolog logger.
type Logger struct {
	component string
	level     zerolog.Level
}

// New creates a Logger. Printf writes at debug level.
func New() *Logger {
	return &Logger{level: zerolog.DebugLevel}
}

// NewComponent creates a Logger tagging every line with a component field.
// Printf writes at the given level.
func NewComponent(component string, level zerolog.Level) *Logger {
	return &Logger{component: component, level: level}
}

func (l *Logger) event(level zerolog.Level) *zerolog.Event {
	e := log.WithLevel(level)
	if l.component != "" {
		e = e.Str("component", l.component)
	}

	return e
}

func (l *Logger) logf(level zerolog.Level, format string, args ...interface{}) {
	l.event(level).Msgf(strings.TrimSuffix(format, "\n"), args...)
}

// Printf implements gorm's logger.Writer.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.logf(l.level, format, args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(zerolog.DebugLevel, format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(zerolog.InfoLevel, format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logf(zerolog.WarnLevel, format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(zerolog.ErrorLevel, format, args...)
}
