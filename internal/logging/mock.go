package logging

import "sync"

// MockLogger is a Logger implementation for tests. It records every message
// it receives so assertions can be made about what was logged.
type MockLogger struct {
	mu      sync.Mutex
	Entries []MockEntry
	fields  []Field
	err     error
}

// MockEntry is a single recorded log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append(append([]Field{}, m.fields...), fields...)
	m.Entries = append(m.Entries, MockEntry{Level: level, Message: msg, Fields: all, Err: m.err})
}

// Debug records a debug-level message.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level message.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warn-level message.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level message.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError returns the same recorder with an error attached to later entries.
func (m *MockLogger) WithError(err error) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithField returns the same recorder with a field attached to later entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns the same recorder with fields attached to later entries.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields = append(m.fields, fields...)
	return m
}

// Messages returns the recorded messages in order.
func (m *MockLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.Message
	}
	return out
}
