package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Severity represents log message severity levels
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity maps a level name such as "debug" or "WARNING" to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return SeverityDebug, nil
	case "INFO":
		return SeverityInfo, nil
	case "WARNING", "WARN":
		return SeverityWarning, nil
	case "ERROR":
		return SeverityError, nil
	}
	return SeverityInfo, fmt.Errorf("unknown log level %q", name)
}

// Logger is the logging contract used by the translator.
type Logger interface {
	// Log logs a message with the specified severity
	Log(severity Severity, msg string)

	// Logf logs a formatted message with the specified severity
	Logf(severity Severity, format string, args ...any)

	// Error logs an error
	Error(err error)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// StdLogger implements Logger on top of the standard library logger. All
// levels share one writer, stderr by default, since stdout carries the
// translated trace.
type StdLogger struct {
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger
	minLevel   Severity
}

// NewStdLogger creates a logger writing to stderr.
func NewStdLogger(minLevel Severity) *StdLogger {
	return NewStdLoggerWithWriter(os.Stderr, minLevel)
}

// NewStdLoggerWithWriter creates a logger writing to w.
func NewStdLoggerWithWriter(w io.Writer, minLevel Severity) *StdLogger {
	return &StdLogger{
		debugLog:   log.New(w, "DEBUG: ", log.Ltime|log.Lshortfile),
		infoLog:    log.New(w, "INFO: ", log.Ltime),
		warningLog: log.New(w, "WARNING: ", log.Ltime),
		errorLog:   log.New(w, "ERROR: ", log.Ltime),
		minLevel:   minLevel,
	}
}

// Log logs a message with the specified severity
func (l *StdLogger) Log(severity Severity, msg string) {
	l.output(3, severity, msg)
}

func (l *StdLogger) output(depth int, severity Severity, msg string) {
	if severity < l.minLevel {
		return
	}

	switch severity {
	case SeverityDebug:
		l.debugLog.Output(depth, msg)
	case SeverityInfo:
		l.infoLog.Output(depth, msg)
	case SeverityWarning:
		l.warningLog.Output(depth, msg)
	case SeverityError:
		l.errorLog.Output(depth, msg)
	}
}

// Logf logs a formatted message with the specified severity
func (l *StdLogger) Logf(severity Severity, format string, args ...any) {
	if severity < l.minLevel {
		return
	}
	l.output(3, severity, fmt.Sprintf(format, args...))
}

// Error logs an error
func (l *StdLogger) Error(err error) {
	if err != nil {
		l.output(3, SeverityError, err.Error())
	}
}

func (l *StdLogger) Debugf(format string, args ...any) {
	if l.minLevel > SeverityDebug {
		return
	}
	l.output(3, SeverityDebug, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Infof(format string, args ...any) {
	l.Logf(SeverityInfo, format, args...)
}

func (l *StdLogger) Warnf(format string, args ...any) {
	l.Logf(SeverityWarning, format, args...)
}

// NoOpLogger is a logger that doesn't log anything
type NoOpLogger struct{}

// NewNoOpLogger creates a new no-op logger
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (l *NoOpLogger) Log(severity Severity, msg string)                  {}
func (l *NoOpLogger) Logf(severity Severity, format string, args ...any) {}
func (l *NoOpLogger) Error(err error)                                    {}
func (l *NoOpLogger) Debugf(format string, args ...any)                  {}
func (l *NoOpLogger) Infof(format string, args ...any)                   {}
func (l *NoOpLogger) Warnf(format string, args ...any)                   {}
