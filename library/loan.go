package library

import (
	"fmt"
	"time"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

// Loan is the active borrowing relationship between one book and one member.
type Loan struct {
	book         Book
	member       *Member
	dateBorrowed time.Time
}

// NewLoan creates a Loan, a zero dateBorrowed defaults to today.
// Both the book and the member are required.
func NewLoan(book Book, member *Member, dateBorrowed time.Time) (Loan, error) {
	if book == nil || member == nil {
		return Loan{}, fmt.Errorf("loan requires both a book and a member: %w", nilReferenceErr(book, member))
	}

	if dateBorrowed.IsZero() {
		dateBorrowed = time.Now()
	}

	return Loan{
		book:         book,
		member:       member,
		dateBorrowed: registry.ToDate(dateBorrowed),
	}, nil
}

// LoanFromRecord rebuilds a Loan from its persisted form and the live book and member it references.
func LoanFromRecord(record LoanRecord, book Book, member *Member) (Loan, error) {
	if book == nil || member == nil {
		return Loan{}, nilReferenceErr(book, member)
	}

	if record.BookID != book.ID() || record.MemberID != member.ID() {
		return Loan{}, fmt.Errorf(
			"%w: record (%q, %q), given (%q, %q)",
			ErrLoanRecordMismatch, record.BookID, record.MemberID, book.ID(), member.ID(),
		)
	}

	dateBorrowed, err := registry.ParseDate(record.DateBorrowed)
	if err != nil {
		return Loan{}, err
	}

	return NewLoan(book, member, dateBorrowed)
}

// Book returns the borrowed book.
func (l Loan) Book() Book {
	return l.book
}

// Member returns the borrowing member.
func (l Loan) Member() *Member {
	return l.member
}

// DateBorrowed returns the calendar date the book was borrowed on.
func (l Loan) DateBorrowed() time.Time {
	return l.dateBorrowed
}

// Matches reports whether the loan links the given book and member IDs.
func (l Loan) Matches(bookID, memberID string) bool {
	return l.book.ID() == bookID && l.member.ID() == memberID
}

// Equal reports whether both loans reference the same book ID and member ID, the date is ignored.
func (l Loan) Equal(other Loan) bool {
	if l.book == nil || l.member == nil || other.book == nil || other.member == nil {
		return false
	}

	return l.Matches(other.book.ID(), other.member.ID())
}

// Record converts the loan to its persisted form.
func (l Loan) Record() LoanRecord {
	return LoanRecord{
		BookID:       l.book.ID(),
		MemberID:     l.member.ID(),
		DateBorrowed: registry.FormatDate(l.dateBorrowed),
	}
}

func (l Loan) String() string {
	return fmt.Sprintf("Loan: %s borrowed '%s' on %s", l.member.Name(), l.book.Title(), registry.FormatDate(l.dateBorrowed))
}

func nilReferenceErr(book Book, member *Member) error {
	if book == nil {
		return ErrNilBook
	}

	return ErrNilMember
}
