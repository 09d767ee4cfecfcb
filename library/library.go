package library

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

// Library is the registry owning all books, members, and active loans.
//
// It is not safe for concurrent use.
type Library struct {
	books   map[string]Book
	members map[string]*Member
	loans   []Loan
	clock   registry.Clock
	logger  registry.Logger
}

// Option defines a functional option for configuring Library.
type Option func(*Library) error

// WithLogger sets the logger for the Library.
// Info level: books and members added, books borrowed and returned, documents saved and loaded.
// Warn level: loans dropped while loading because they reference a missing book or member.
// Error level: failures to save or load a document.
func WithLogger(logger registry.Logger) Option {
	return func(l *Library) error {
		l.logger = logger
		return nil
	}
}

// WithClock sets the clock used to date new loans.
func WithClock(clock registry.Clock) Option {
	return func(l *Library) error {
		if clock == nil {
			return ErrNilClock
		}

		l.clock = clock

		return nil
	}
}

// New creates an empty Library with optional configuration.
func New(options ...Option) (*Library, error) {
	l := &Library{
		books:   make(map[string]Book),
		members: make(map[string]*Member),
		loans:   make([]Loan, 0),
		clock:   time.Now,
	}

	for _, option := range options {
		if err := option(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// AddBook registers a book, its ID must not be registered yet.
func (l *Library) AddBook(book Book) error {
	if book == nil {
		return ErrNilBook
	}

	if _, exists := l.books[book.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrBookAlreadyExists, book.ID())
	}

	l.books[book.ID()] = book
	l.logOperation(logMsgBookAdded, logAttrBookID, book.ID(), logAttrBookType, book.Record().Type)

	return nil
}

// AddMember registers a member, its ID must not be registered yet.
func (l *Library) AddMember(member *Member) error {
	if member == nil {
		return ErrNilMember
	}

	if _, exists := l.members[member.ID()]; exists {
		return fmt.Errorf("%w: %q", ErrMemberAlreadyExists, member.ID())
	}

	l.members[member.ID()] = member
	l.logOperation(logMsgMemberAdded, logAttrMemberID, member.ID())

	return nil
}

// Book returns the registered book with the given ID.
func (l *Library) Book(bookID string) (Book, bool) {
	book, ok := l.books[bookID]
	return book, ok
}

// Member returns the registered member with the given ID.
func (l *Library) Member(memberID string) (*Member, bool) {
	member, ok := l.members[memberID]
	return member, ok
}

// Books returns all registered books ordered by ID.
func (l *Library) Books() []Book {
	books := make([]Book, 0, len(l.books))
	for _, book := range l.books {
		books = append(books, book)
	}

	slices.SortFunc(books, func(a, b Book) int {
		return strings.Compare(a.ID(), b.ID())
	})

	return books
}

// Members returns all registered members ordered by ID.
func (l *Library) Members() []*Member {
	members := make([]*Member, 0, len(l.members))
	for _, member := range l.members {
		members = append(members, member)
	}

	slices.SortFunc(members, func(a, b *Member) int {
		return strings.Compare(a.ID(), b.ID())
	})

	return members
}

// Loans returns a copy of the active loans in the order they were made.
func (l *Library) Loans() []Loan {
	return slices.Clone(l.loans)
}

// BorrowedBooks returns the books the member currently holds.
func (l *Library) BorrowedBooks(memberID string) ([]Book, error) {
	member, ok := l.members[memberID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMemberNotFound, memberID)
	}

	return member.BorrowedBooks(), nil
}

// BorrowBook lends the book to the member and records a new Loan dated by the Library's clock.
//
// The checks run in a fixed order: member exists, book exists, member does not hold the book yet,
// a copy is available. The first violated rule determines the returned error.
func (l *Library) BorrowBook(memberID, bookID string) (Loan, error) {
	member, book, err := l.lookup(memberID, bookID)
	if err != nil {
		return Loan{}, err
	}

	if member.Holds(bookID) {
		return Loan{}, fmt.Errorf("%w: member %q, book %q", ErrBookAlreadyBorrowed, memberID, bookID)
	}

	if borrowErr := book.Borrow(); borrowErr != nil {
		return Loan{}, fmt.Errorf("%w: %q: %w", ErrBookNotAvailable, bookID, borrowErr)
	}

	if attachErr := member.BorrowBook(book); attachErr != nil {
		book.ReturnBook()
		return Loan{}, attachErr
	}

	loan, loanErr := NewLoan(book, member, l.clock())
	if loanErr != nil {
		_ = member.ReturnBook(book)
		book.ReturnBook()

		return Loan{}, loanErr
	}

	l.loans = append(l.loans, loan)
	l.logOperation(logMsgBookBorrowed, logAttrMemberID, memberID, logAttrBookID, bookID)

	return loan, nil
}

// ReturnBook takes the book back from the member and removes the matching Loan.
//
// The checks run in a fixed order: member exists, book exists, member holds the book.
func (l *Library) ReturnBook(memberID, bookID string) error {
	member, book, err := l.lookup(memberID, bookID)
	if err != nil {
		return err
	}

	if !member.Holds(bookID) {
		return fmt.Errorf("%w: member %q, book %q", ErrBookNotBorrowed, memberID, bookID)
	}

	if detachErr := member.ReturnBook(book); detachErr != nil {
		return detachErr
	}

	book.ReturnBook()

	l.loans = slices.DeleteFunc(l.loans, func(loan Loan) bool {
		return loan.Matches(bookID, memberID)
	})

	l.logOperation(logMsgBookReturned, logAttrMemberID, memberID, logAttrBookID, bookID)

	return nil
}

func (l *Library) String() string {
	return fmt.Sprintf(
		"Library with %d books, %d members, and %d active loans",
		len(l.books), len(l.members), len(l.loans),
	)
}

// lookup resolves member and book in this order, so an unknown member is reported before an unknown book.
func (l *Library) lookup(memberID, bookID string) (*Member, Book, error) {
	member, ok := l.members[memberID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrMemberNotFound, memberID)
	}

	book, ok := l.books[bookID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrBookNotFound, bookID)
	}

	return member, book, nil
}
