// Package logger provides the logging interface used by the warpcron
// scheduler runtime. It supports console output through the standard
// library log package, a no-op backend for tests, and a mock backend that
// records calls for verification.
package logger

import (
	"fmt"
	"log"
)

// Logger defines the interface for logging across warpcron components.
type Logger interface {
	// Info logs an informational message (e.g., "schedule loaded").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g., "job overran its interval").
	Warning(format string, args ...interface{})

	// Error logs an error message (e.g., "job exited with status 1").
	Error(format string, args ...interface{})

	// Close releases resources held by the logger.
	// Safe to call multiple times. Returns nil for loggers without resources.
	Close() error
}

// StandardLogger wraps the stdlib *log.Logger for console/file output.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger creates a logger that wraps the given *log.Logger.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close is a no-op for StandardLogger (no resources to release).
func (s *StandardLogger) Close() error {
	return nil
}

// Ensure StandardLogger satisfies the Logger interface.
var _ Logger = (*StandardLogger)(nil)

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging should be disabled.
type NopLogger struct{}

// Info discards the message.
func (NopLogger) Info(format string, args ...interface{}) {}

// Warning discards the message.
func (NopLogger) Warning(format string, args ...interface{}) {}

// Error discards the message.
func (NopLogger) Error(format string, args ...interface{}) {}

// Close is a no-op.
func (NopLogger) Close() error { return nil }

// Ensure NopLogger satisfies the Logger interface.
var _ Logger = NopLogger{}

// MockLogger is a test double for the Logger interface.
// It records all log calls for verification in tests.
type MockLogger struct {
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		InfoCalls:    make([]string, 0),
		WarningCalls: make([]string, 0),
		ErrorCalls:   make([]string, 0),
	}
}

// Info records the formatted message.
func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

// Warning records the formatted message.
func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

// Error records the formatted message.
func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

// Close records that Close was called.
func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

// Ensure MockLogger satisfies the Logger interface.
var _ Logger = (*MockLogger)(nil)
