// Package logging provides levelled key=value logging for sieve. It wraps the
// standard log package; fields are written in sorted key order so output is
// stable across runs.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

// Level represents a log level.
type Level int

const (
	// LevelDebug is for per-input detail such as rejected candidates.
	LevelDebug Level = iota
	// LevelInfo is for table construction statistics.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failures that end a command.
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the upper-case level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a case-insensitive level name (debug, info, warn, error)
// to a Level. "warning" is accepted as an alias for warn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// Logger writes levelled messages with context fields. A Logger is
// immutable; With returns a copy.
type Logger struct {
	minLevel Level
	fields   map[string]interface{}
	output   *log.Logger
}

var defaultLogger = NewWriter(os.Stderr, LevelWarn)

// Default returns the package-level logger, which writes to stderr at WARN.
func Default() *Logger {
	return defaultLogger
}

// NewWriter creates a Logger writing timestamped lines to w at the given
// minimum level.
func NewWriter(w io.Writer, level Level) *Logger {
	return newLogger(log.New(w, "", log.LstdFlags), level)
}

func newLogger(output *log.Logger, level Level) *Logger {
	return &Logger{
		minLevel: level,
		fields:   make(map[string]interface{}),
		output:   output,
	}
}

// With returns a Logger that adds key=value to every line.
func (l *Logger) With(key string, value interface{}) *Logger {
	fields := make(map[string]interface{}, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &Logger{minLevel: l.minLevel, fields: fields, output: l.output}
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, keyVals ...interface{}) { l.log(LevelDebug, msg, keyVals) }

// Info logs at info level.
func (l *Logger) Info(msg string, keyVals ...interface{}) { l.log(LevelInfo, msg, keyVals) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, keyVals ...interface{}) { l.log(LevelWarn, msg, keyVals) }

// Error logs at error level.
func (l *Logger) Error(msg string, keyVals ...interface{}) { l.log(LevelError, msg, keyVals) }

// log formats "LEVEL: msg | k=v ..." with context fields and inline pairs
// merged; pairs with a non-string key are skipped.
func (l *Logger) log(level Level, msg string, keyVals []interface{}) {
	if level < l.minLevel {
		return
	}

	all := make(map[string]interface{}, len(l.fields)+len(keyVals)/2)
	for k, v := range l.fields {
		all[k] = v
	}
	for i := 0; i+1 < len(keyVals); i += 2 {
		if key, ok := keyVals[i].(string); ok {
			all[key] = keyVals[i+1]
		}
	}

	var sb strings.Builder
	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(msg)

	if len(all) > 0 {
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" |")
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%s", k, formatValue(all[k]))
		}
	}

	l.output.Print(sb.String())
}

// formatValue quotes strings containing whitespace and errors.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\n") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case error:
		return fmt.Sprintf("%q", val.Error())
	default:
		return fmt.Sprint(v)
	}
}
