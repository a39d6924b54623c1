package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelSuccess
	LevelError
	LevelFatal
)

var levelNames = map[LogLevel]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarn:    "WARN",
	LevelError:   "ERROR",
	LevelFatal:   "FATAL",
	LevelSuccess: "SUCCESS",
}

var levelColors = map[LogLevel]*color.Color{
	LevelDebug:   color.New(color.FgCyan),
	LevelInfo:    color.New(color.FgGreen),
	LevelWarn:    color.New(color.FgYellow),
	LevelError:   color.New(color.FgRed),
	LevelFatal:   color.New(color.FgRed, color.Bold),
	LevelSuccess: color.New(color.FgGreen, color.Bold),
}

var levelEmojis = map[LogLevel]string{
	LevelDebug:   "🐛",
	LevelInfo:    "ℹ️",
	LevelWarn:    "⚠️",
	LevelError:   "❌",
	LevelFatal:   "💀",
	LevelSuccess: "✅",
}

// Logger is the main logger struct
type Logger struct {
	mu       sync.Mutex
	minLevel LogLevel
	logger   *log.Logger
	display  string
}

// New creates a new Logger instance
func New(out io.Writer, minLevel LogLevel) *Logger {
	return &Logger{
		minLevel: minLevel,
		logger:   log.New(out, "", 0),
	}
}

// DefaultLogger creates a logger with default settings. Debug lines are off
// unless NENO_DEBUG is set.
func DefaultLogger() *Logger {
	level := LevelInfo
	if os.Getenv("NENO_DEBUG") != "" {
		level = LevelDebug
	}
	return New(os.Stderr, level)
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// Log logs a message at a specific level
func (l *Logger) Log(level LogLevel, msg string, args ...interface{}) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	display := ""
	if l.display != "" {
		display = l.display + " "
	}

	l.logger.Printf("%s %s %s%s",
		levelColors[level].Sprint(levelNames[level]),
		levelEmojis[level],
		display,
		fmt.Sprintf(msg, args...))
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.Log(LevelDebug, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.Log(LevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.Log(LevelWarn, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.Log(LevelError, msg, args...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.Log(LevelFatal, msg, args...)
	os.Exit(1)
}

// Success logs a success message
func (l *Logger) Success(msg string, args ...interface{}) {
	l.Log(LevelSuccess, msg, args...)
}

// PackageLogger creates a logger with a package display name prepended to
// every line.
func PackageLogger(displayName string) *Logger {
	l := DefaultLogger()
	l.display = displayName
	return l
}
