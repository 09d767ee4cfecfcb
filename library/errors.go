package library

import (
	"errors"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

var (
	// ErrMemberNotFound is returned when a member ID is not registered.
	ErrMemberNotFound = registry.Kind("member not found", registry.ErrNotFound)

	// ErrBookNotFound is returned when a book ID is not registered.
	ErrBookNotFound = registry.Kind("book not found", registry.ErrNotFound)

	// ErrBookAlreadyExists is returned when adding a book with an ID that is already registered.
	ErrBookAlreadyExists = registry.Kind("book already exists", registry.ErrAlreadyExists)

	// ErrMemberAlreadyExists is returned when adding a member with an ID that is already registered.
	ErrMemberAlreadyExists = registry.Kind("member already exists", registry.ErrAlreadyExists)

	// ErrBookAlreadyBorrowed is returned when a member tries to borrow a book they already hold.
	ErrBookAlreadyBorrowed = registry.Kind("member already has this book borrowed", registry.ErrInvalidOperation)

	// ErrBookNotBorrowed is returned when a member tries to return a book they do not hold.
	ErrBookNotBorrowed = registry.Kind("member does not have this book borrowed", registry.ErrInvalidOperation)

	// ErrBookNotAvailable is returned by Library.BorrowBook when the book has no copy left.
	ErrBookNotAvailable = registry.Kind("book not available", registry.ErrNotAvailable)

	// ErrNoCopiesAvailable is returned by PhysicalBook.Borrow when all copies are lent.
	ErrNoCopiesAvailable = registry.Kind("no copies available", registry.ErrNotAvailable)
)

var (
	// ErrEmptyBookID is returned when a book is built without an ID.
	ErrEmptyBookID = registry.Kind("book id must not be empty", registry.ErrValidation)

	// ErrEmptyMemberID is returned when a member is built without an ID.
	ErrEmptyMemberID = registry.Kind("member id must not be empty", registry.ErrValidation)

	// ErrNegativeCopies is returned when a physical book is built with a negative copy count.
	ErrNegativeCopies = registry.Kind("available copies cannot be negative", registry.ErrValidation)

	// ErrNegativeFileSize is returned when an e-book is built with a negative file size.
	ErrNegativeFileSize = registry.Kind("file size cannot be negative", registry.ErrValidation)

	// ErrInvalidFileSize is returned when an e-book is built with a NaN or infinite file size.
	ErrInvalidFileSize = registry.Kind("file size must be a finite number", registry.ErrValidation)

	// ErrNilBook is returned when a nil book is handed to an operation that needs one.
	ErrNilBook = registry.Kind("book must not be nil", registry.ErrValidation)

	// ErrNilMember is returned when a nil member is handed to an operation that needs one.
	ErrNilMember = registry.Kind("member must not be nil", registry.ErrValidation)

	// ErrMemberHoldsBook is returned by Member.BorrowBook for a book with an ID the member already holds.
	ErrMemberHoldsBook = registry.Kind("member already holds a book with this id", registry.ErrValidation)

	// ErrMemberDoesNotHoldBook is returned by Member.ReturnBook for a book the member does not hold.
	ErrMemberDoesNotHoldBook = registry.Kind("member does not hold a book with this id", registry.ErrValidation)

	// ErrLoanRecordMismatch is returned when a loan record does not reference the given book and member.
	ErrLoanRecordMismatch = registry.Kind("loan record does not match book and member", registry.ErrValidation)

	// ErrMissingBookField is returned when a book record lacks its type-specific field.
	ErrMissingBookField = registry.Kind("book record lacks its type specific field", registry.ErrValidation)

	// ErrNilClock is returned by WithClock when no clock is supplied.
	ErrNilClock = errors.New("clock must not be nil")
)

// ErrUnknownBookType is returned when a book record carries an unknown type discriminator.
var ErrUnknownBookType = errors.New("unknown book type")
