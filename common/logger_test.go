package common

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityDebug, "DEBUG"},
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.severity.String()
			if got != tt.expected {
				t.Errorf("Severity.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in      string
		want    Severity
		wantErr bool
	}{
		{"debug", SeverityDebug, false},
		{"INFO", SeverityInfo, false},
		{" warn ", SeverityWarning, false},
		{"Warning", SeverityWarning, false},
		{"error", SeverityError, false},
		{"loud", SeverityInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStdLogger_Log(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLoggerWithWriter(&out, SeverityDebug)

	tests := []struct {
		name     string
		severity Severity
		message  string
	}{
		{"Debug", SeverityDebug, "debug message"},
		{"Info", SeverityInfo, "info message"},
		{"Warning", SeverityWarning, "warning message"},
		{"Error", SeverityError, "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			logger.Log(tt.severity, tt.message)

			output := out.String()
			if !strings.Contains(output, tt.message) {
				t.Errorf("Log output should contain %q, got: %s", tt.message, output)
			}
			if !strings.Contains(output, tt.severity.String()) {
				t.Errorf("Log output should contain severity %q, got: %s", tt.severity.String(), output)
			}
		})
	}
}

func TestStdLogger_Formatted(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLoggerWithWriter(&out, SeverityDebug)

	logger.Debugf("watch %s", "c0001000")
	logger.Infof("selected %s", "ARCH:PXA")
	logger.Warnf("unknown machine %q", "foo")
	logger.Logf(SeverityError, "formatted %s %d", "test", 123)

	output := out.String()
	for _, want := range []string{
		"DEBUG: ", "watch c0001000",
		"INFO: ", "selected ARCH:PXA",
		"WARNING: ", `unknown machine "foo"`,
		"ERROR: ", "formatted test 123",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestStdLogger_Error(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLoggerWithWriter(&out, SeverityInfo)

	logger.Error(errors.New("test error"))
	if !strings.Contains(out.String(), "test error") {
		t.Errorf("Error output should contain error message, got: %s", out.String())
	}

	out.Reset()
	logger.Error(nil)
	if out.Len() != 0 {
		t.Errorf("Error(nil) should not log anything, got: %s", out.String())
	}
}

func TestStdLogger_MinLevel(t *testing.T) {
	var out bytes.Buffer
	logger := NewStdLoggerWithWriter(&out, SeverityWarning)

	logger.Debugf("debug message")
	logger.Infof("info message")
	if out.Len() != 0 {
		t.Errorf("Debug and Info should not be logged when minLevel is Warning, got: %s", out.String())
	}

	logger.Warnf("warning message")
	if !strings.Contains(out.String(), "warning message") {
		t.Errorf("Warning should be logged, got: %s", out.String())
	}
}

func TestNoOpLogger(t *testing.T) {
	var logger Logger = NewNoOpLogger()

	// All these should do nothing and not panic
	logger.Log(SeverityInfo, "test")
	logger.Logf(SeverityInfo, "test %s", "formatted")
	logger.Error(errors.New("test error"))
	logger.Debugf("debug")
	logger.Infof("info")
	logger.Warnf("warning")
}
