package postgresengine

import (
	"github.com/AntonStoeckl/library-budget-registry/registry"
)

// Option defines a functional option for configuring DocumentStore.
type Option func(*DocumentStore) error

// WithTableName sets the table name for the DocumentStore.
func WithTableName(tableName string) Option {
	return func(ds *DocumentStore) error {
		if tableName == "" {
			return registry.ErrEmptyTableName
		}

		ds.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the DocumentStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: documents saved, loaded, deleted with their sizes and durations
// Warn level: non-critical issues like cleanup failures
// Error level: failures that cause operation failures.
func WithLogger(logger registry.Logger) Option {
	return func(ds *DocumentStore) error {
		ds.logger = logger
		return nil
	}
}
