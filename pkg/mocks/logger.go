package mocks

import (
	"fmt"
	"sync"

	"github.com/user/pixelfx/pkg/ports"
)

// Entry is one recorded log call.
type Entry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger records formatted log messages for assertions.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]Entry
	component string
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]Entry{}}
}

func (l *Logger) Debug(msg string, args ...any) { l.record(ports.LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.record(ports.LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.record(ports.LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.record(ports.LevelError, msg, args) }

// WithComponent returns a Logger sharing the same record.
func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: l.mu, entries: l.entries, component: component}
}

// Entries returns a copy of everything logged so far.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), (*l.entries)...)
}

// Count returns the number of entries at the given level.
func (l *Logger) Count(level ports.LogLevel) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (l *Logger) record(level ports.LogLevel, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, Entry{
		Level:     level,
		Component: l.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

var _ ports.Logger = (*Logger)(nil)
