package registry

import (
	"errors"
)

var (
	// ErrNotFound is the kind of all errors about unknown members, books, or categories.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is the kind of all errors about duplicate identities on add.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidOperation is the kind of all business rule violations.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotAvailable is the kind of all errors about exhausted capacity.
	ErrNotAvailable = errors.New("not available")

	// ErrValidation is the kind of all errors about malformed entity fields.
	ErrValidation = errors.New("validation failed")
)

var (
	// ErrReadingDocumentFailed is returned when a persisted document could not be read.
	ErrReadingDocumentFailed = errors.New("reading document failed")

	// ErrWritingDocumentFailed is returned when a document could not be written.
	ErrWritingDocumentFailed = errors.New("writing document failed")

	// ErrEncodingDocumentFailed is returned when a registry could not be serialized.
	ErrEncodingDocumentFailed = errors.New("encoding document failed")

	// ErrDecodingDocumentFailed is returned when a persisted document is malformed.
	ErrDecodingDocumentFailed = errors.New("decoding document failed")

	// ErrDocumentNotFound is returned by a DocumentStore when no document exists for a key.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDeletingDocumentFailed is returned when a document could not be deleted.
	ErrDeletingDocumentFailed = errors.New("deleting document failed")

	// ErrEmptyDocumentKey is returned when a DocumentStore is called with an empty key.
	ErrEmptyDocumentKey = errors.New("document key must not be empty")

	// ErrNilDatabaseConnection is returned when a database-backed store is built without a connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when a database-backed store is configured with an empty table name.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrBuildingQueryFailed is returned when a SQL statement could not be built.
	ErrBuildingQueryFailed = errors.New("building query failed")
)

// Kind derives a specific sentinel error with its own message that also matches the given kind,
// e.g. errors.Is(Kind("member not found", ErrNotFound), ErrNotFound) is true.
func Kind(message string, kind error) error {
	return &kindError{message: message, kind: kind}
}

type kindError struct {
	message string
	kind    error
}

func (e *kindError) Error() string {
	return e.message
}

func (e *kindError) Unwrap() error {
	return e.kind
}
