// Package logger provides the colored prefix logger used to tag each
// subsystem's output during startup and operation.
package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger writes timestamped, color-tagged log lines for one subsystem.
type Logger struct {
	prefix string
	color  string
	out    io.Writer
	mu     sync.Mutex
}

const colorReset = "\033[0m"

// New creates a logger tagging every line with the given prefix and ANSI
// color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger writer must not be nil")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    out,
	}, nil
}

func (l *Logger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s[%s]%s [%s] %s %s\n",
		l.color, l.prefix, colorReset, level, time.Now().Format(time.RFC3339), msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.log("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log("ERROR", msg)
}
