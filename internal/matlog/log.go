// Package matlog is a thin structured-logging wrapper around the standard
// log package. It replaces the source library's process-wide verbosity
// global (DESIGN NOTES: "Reimplementations should route logs through a
// passed-in logger") with a Logger value callers construct and pass
// explicitly; nothing here is package-level mutable state.
package matlog

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Fields is a set of structured key/value pairs attached to one log line.
type Fields map[string]any

// Logger wraps a standard *log.Logger with an optional correlation ID and a
// base set of fields applied to every line it writes.
type Logger struct {
	out    *log.Logger
	corrID string
	base   Fields
}

// New returns a Logger writing to os.Stderr with no correlation ID.
func New() *Logger {
	return &Logger{out: log.New(os.Stderr, "", log.LstdFlags)}
}

// WithSession returns a copy of l tagged with a fresh correlation ID, for
// distinguishing concurrent test runs' BDD manager sessions (or any other
// scoped unit of work) in interleaved log output.
func (l *Logger) WithSession() *Logger {
	cp := *l
	cp.corrID = uuid.New().String()
	return &cp
}

// With returns a copy of l with fields merged into its base field set.
func (l *Logger) With(fields Fields) *Logger {
	merged := make(Fields, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	cp := *l
	cp.base = merged
	return &cp
}

// Infof logs a message at informational level with the given fields.
func (l *Logger) Infof(fields Fields, format string, args ...any) {
	l.logf("INFO", fields, format, args...)
}

// Errorf logs a message at error level with the given fields.
func (l *Logger) Errorf(fields Fields, format string, args ...any) {
	l.logf("ERROR", fields, format, args...)
}

func (l *Logger) logf(level string, fields Fields, format string, args ...any) {
	var sb strings.Builder
	sb.WriteString(level)
	sb.WriteString(": ")
	if l.corrID != "" {
		fmt.Fprintf(&sb, "[%s] ", l.corrID)
	}
	sb.WriteString(fmt.Sprintf(format, args...))

	merged := make(Fields, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	if len(merged) > 0 {
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%v", k, merged[k])
		}
		sb.WriteString("}")
	}

	l.out.Print(sb.String())
}
