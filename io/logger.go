package slicio

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the prefix style of log lines
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [SUCCESS] [WARN] [ERROR] [DEBUG]
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatPlain                    // No prefix
)

var taggedPrefixes = map[LogLevel]string{
	LevelDebug:   "[DEBUG]",
	LevelInfo:    "[INFO]",
	LevelSuccess: "[SUCCESS]",
	LevelWarning: "[WARN]",
	LevelError:   "[ERROR]",
}

var symbolPrefixes = map[LogLevel]string{
	LevelDebug:   "●",
	LevelInfo:    "◆",
	LevelSuccess: "✓",
	LevelWarning: "▲",
	LevelError:   "✗",
}

var levelStyles = map[LogLevel]Style{
	LevelDebug:   NewStyle(color.FgMagenta),
	LevelInfo:    NewStyle(color.FgBlue),
	LevelSuccess: NewStyle(color.FgGreen),
	LevelWarning: NewStyle(color.FgYellow),
	LevelError:   NewStyle(color.FgRed, color.Bold),
}

// Logger writes leveled, optionally colored lines through an IOManager
type Logger struct {
	io           *IOManager
	format       LogFormat
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	now          func() time.Time
}

// NewLogger creates a new logger bound to the given IOManager. The default
// minimum level is Info, so parser traces stay quiet until Debug is enabled.
func NewLogger(m *IOManager) *Logger {
	if m == nil {
		m = New()
	}
	return &Logger{
		io:           m,
		format:       LogFormatTagged,
		minLevel:     LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
		now:          time.Now,
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithLevel sets the minimum level that is written
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTimestamp enables or disables timestamp in log output
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// WithTimeFormat sets the time format (Go time format string)
func (l *Logger) WithTimeFormat(format string) *Logger {
	l.timeFormat = format
	return l
}

// ErrorsToStderr controls whether errors and warnings go to stderr
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && level >= l.minLevel
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.selectWriter(level), l.formatMessage(level, msg))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var parts []string
	switch l.format {
	case LogFormatTagged:
		parts = append(parts, taggedPrefixes[level])
	case LogFormatSymbols:
		parts = append(parts, symbolPrefixes[level])
	case LogFormatPlain:
	}
	if l.withTime {
		parts = append(parts, l.now().Format(l.timeFormat))
	}
	parts = append(parts, msg)

	line := strings.Join(parts, " ")
	if style, ok := levelStyles[level]; ok {
		return style.Sprint(l.io, line)
	}
	return line
}

func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && (level == LevelError || level == LevelWarning) {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Success logs a success message
func (l *Logger) Success(format string, args ...any) {
	l.Log(LevelSuccess, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}
