package mocks

import (
	"fmt"

	"github.com/user/framecount/pkg/ports"
)

// Logger records formatted log messages per level.
type Logger struct {
	DebugMessages []string
	InfoMessages  []string
	WarnMessages  []string
	ErrorMessages []string
}

// Debug records a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.DebugMessages = append(l.DebugMessages, fmt.Sprintf(msg, args...))
}

// Info records an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.InfoMessages = append(l.InfoMessages, fmt.Sprintf(msg, args...))
}

// Warn records a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.WarnMessages = append(l.WarnMessages, fmt.Sprintf(msg, args...))
}

// Error records an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.ErrorMessages = append(l.ErrorMessages, fmt.Sprintf(msg, args...))
}

// WithComponent returns the same recording logger.
func (l *Logger) WithComponent(component string) ports.Logger {
	return l
}
