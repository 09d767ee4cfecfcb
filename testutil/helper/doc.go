// Package helper provides test doubles shared by the registry test suites.
//
// LogHandlerSpy is a slog.Handler that captures log records, so tests can assert
// which operational messages a registry or store emitted through an injected *slog.Logger.
// GivenUniqueID creates collision-free keys for tests sharing one database.
package helper
