package app

import (
	"fmt"
	"io"
	"time"
)

// Logger takes a component tag ("main", "render") with every line.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes "<RFC3339> [LEVEL] component: message" lines to w.
type FileLogger struct {
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w, now: time.Now} }

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, fmt.Sprintf(format, args...))
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, fmt.Sprintf(format, args...))
}

func (l FileLogger) write(level, component, msg string) {
	if l.w == nil {
		return
	}
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	line := now().Format(time.RFC3339) + " [" + level + "] " + component + ": " + msg + "\n"
	_, _ = io.WriteString(l.w, line)
}
