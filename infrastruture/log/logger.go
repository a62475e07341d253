// Package logger provides a tagged, colorized logger for the application's
// components.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-tmaze/config"
)

var ErrNilWriter = errors.New("logger output writer is nil")

// Logger writes lines of the form "[TAG] [LEVEL] message". The tag is
// printed in the logger's color.
type Logger struct {
	out   *log.Logger
	tag   string
	color string
}

// New creates a Logger for the component named tag.
func New(tag, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		tag:   tag,
		color: color,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Print(fmt.Sprintf("%s[%s]%s %s[%s]%s %s",
		l.color, l.tag, config.ColorReset,
		levelColor, level, config.LogColorReset,
		msg))
}
