// Package cli holds the wiring shared by the librarian and budgettracker commands:
// environment configuration, the slog logger, and the selection of the document store.
package cli
