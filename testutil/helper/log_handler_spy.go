package helper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewLogHandlerSpy(logToStdOut bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdOut,
	}
}

// NewSpyLogger wraps a fresh LogHandlerSpy into a *slog.Logger and returns both.
func NewSpyLogger() (*slog.Logger, *LogHandlerSpy) {
	spy := NewLogHandlerSpy(false)

	return slog.New(spy), spy
}

// Handle implements slog.Handler interface.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)

	if s.logToStdout {
		jsonHandler := slog.NewJSONHandler(os.Stdout, nil)
		_ = jsonHandler.Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler interface.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true // Always enabled for testing
}

// WithAttrs implements slog.Handler interface.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler interface.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecordCount returns the number of captured log records.
func (s *LogHandlerSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// HasLog checks if there's a log record with the given level and message.
func (s *LogHandlerSpy) HasLog(level slog.Level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// HasInfoLog checks if there's an info-level log record containing the specified message.
func (s *LogHandlerSpy) HasInfoLog(message string) bool {
	return s.HasLog(slog.LevelInfo, message)
}

// HasWarnLog checks if there's a warn-level log record containing the specified message.
func (s *LogHandlerSpy) HasWarnLog(message string) bool {
	return s.HasLog(slog.LevelWarn, message)
}

// HasErrorLog checks if there's an error-level log record containing the specified message.
func (s *LogHandlerSpy) HasErrorLog(message string) bool {
	return s.HasLog(slog.LevelError, message)
}

// HasLogWithAttribute checks if there is a log record with the given level and message
// that carries the attribute key with a value rendering as the given string.
func (s *LogHandlerSpy) HasLogWithAttribute(level slog.Level, message, key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := fmt.Sprint(value)

	for _, record := range s.records {
		if record.Level != level || record.Message != message {
			continue
		}

		found := false
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key && attr.Value.String() == want {
				found = true
				return false // Stop iteration
			}

			return true // Continue iteration
		})

		if found {
			return true
		}
	}

	return false
}
