// Package testlogger captures lib-commons log calls so tests can assert on them.
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// Levels recorded by Logger
const (
	Debug = "DEBUG"
	Info  = "INFO"
	Warn  = "WARN"
	Error = "ERROR"
	Fatal = "FATAL"
)

// Entry is a single captured log call
type Entry struct {
	Level   string
	Message string
}

// Logger implements log.Logger and records every call
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

var _ log.Logger = (*Logger)(nil)

// New creates an empty Logger
func New() *Logger {
	return &Logger{}
}

// AsLogger returns l as the pointer-to-interface the library constructors take
func (l *Logger) AsLogger() *log.Logger {
	var logger log.Logger = l
	return &logger
}

func (l *Logger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{Level: level, Message: strings.TrimSuffix(msg, "\n")})
}

func (l *Logger) Debug(args ...any)                 { l.record(Debug, fmt.Sprint(args...)) }
func (l *Logger) Debugf(format string, args ...any) { l.record(Debug, fmt.Sprintf(format, args...)) }
func (l *Logger) Debugln(args ...any)               { l.record(Debug, fmt.Sprintln(args...)) }
func (l *Logger) Info(args ...any)                  { l.record(Info, fmt.Sprint(args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.record(Info, fmt.Sprintf(format, args...)) }
func (l *Logger) Infoln(args ...any)                { l.record(Info, fmt.Sprintln(args...)) }
func (l *Logger) Warn(args ...any)                  { l.record(Warn, fmt.Sprint(args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.record(Warn, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnln(args ...any)                { l.record(Warn, fmt.Sprintln(args...)) }
func (l *Logger) Error(args ...any)                 { l.record(Error, fmt.Sprint(args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.record(Error, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorln(args ...any)               { l.record(Error, fmt.Sprintln(args...)) }
func (l *Logger) Fatal(args ...any)                 { l.record(Fatal, fmt.Sprint(args...)) }
func (l *Logger) Fatalf(format string, args ...any) { l.record(Fatal, fmt.Sprintf(format, args...)) }
func (l *Logger) Fatalln(args ...any)               { l.record(Fatal, fmt.Sprintln(args...)) }

// WithFields implements log.Logger, fields are not tracked
func (l *Logger) WithFields(fields ...any) log.Logger { return l }

// WithDefaultMessageTemplate implements log.Logger, the template is ignored
func (l *Logger) WithDefaultMessageTemplate(message string) log.Logger { return l }

// Sync implements log.Logger
func (l *Logger) Sync() error { return nil }

// Entries returns a copy of all captured entries
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// Count returns the number of entries at level
func (l *Logger) Count(level string) int {
	count := 0

	for _, e := range l.Entries() {
		if e.Level == level {
			count++
		}
	}

	return count
}

// Contains reports whether an entry at level contains every substring
func (l *Logger) Contains(level string, substrings ...string) bool {
	for _, e := range l.Entries() {
		if e.Level != level {
			continue
		}

		found := true

		for _, s := range substrings {
			if !strings.Contains(e.Message, s) {
				found = false
				break
			}
		}

		if found {
			return true
		}
	}

	return false
}

// Leaks reports whether any entry contains one of the given secrets
func (l *Logger) Leaks(secrets ...string) bool {
	for _, e := range l.Entries() {
		for _, s := range secrets {
			if s != "" && strings.Contains(e.Message, s) {
				return true
			}
		}
	}

	return false
}
