// Package registry provides the abstractions shared by the domain registries
// (library lending, budget tracking).
//
// This package defines the error kinds every registry reports, the
// dependency-free Logger interface registries accept as an optional
// collaborator, the DocumentStore interface used to persist registry
// documents, and the calendar-date helpers used for loan and expense dates.
//
// Error kinds:
//   - ErrNotFound: a referenced entity (member, book, category) is unknown
//   - ErrAlreadyExists: an entity with the same identity is already registered
//   - ErrInvalidOperation: a business rule was violated (e.g. double borrow)
//   - ErrNotAvailable: a capacity limit is exhausted
//   - ErrValidation: a malformed entity field
//
// Domain packages derive more specific sentinels from these kinds, so callers
// can match either the specific or the generic error:
//
//	_, err := lib.BorrowBook("M1", "B1")
//	if errors.Is(err, registry.ErrNotFound) {
//		// member or book unknown
//	}
//
// Persistence failures are reported with the Err...DocumentFailed sentinels,
// joined with the underlying cause, which stays matchable with errors.Is.
package registry
