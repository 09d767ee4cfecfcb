package library

import (
	"fmt"
)

// BookRecord is the persisted form of a Book.
// Exactly one of AvailableCopies (PhysicalBook) and FileSizeMB (EBook) is set, selected by Type.
type BookRecord struct {
	Type            string   `json:"type"`
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	AvailableCopies *int     `json:"available_copies,omitempty"`
	FileSizeMB      *float64 `json:"file_size_mb,omitempty"`
}

// MemberRecord is the persisted form of a Member.
type MemberRecord struct {
	MemberID      string   `json:"member_id"`
	Name          string   `json:"name"`
	BorrowedBooks []string `json:"borrowed_books"`
}

// LoanRecord is the persisted form of a Loan.
type LoanRecord struct {
	BookID       string `json:"book_id"`
	MemberID     string `json:"member_id"`
	DateBorrowed string `json:"date_borrowed"`
}

// Document is the persisted form of a whole Library.
type Document struct {
	Books   []BookRecord   `json:"books"`
	Members []MemberRecord `json:"members"`
	Loans   []LoanRecord   `json:"loans"`
}

// BookFromRecord rebuilds the book variant selected by the record's type discriminator.
func BookFromRecord(record BookRecord) (Book, error) {
	switch record.Type {
	case BookTypePhysical:
		if record.AvailableCopies == nil {
			return nil, fmt.Errorf("%w: %q has no available_copies", ErrMissingBookField, record.ID)
		}

		return NewPhysicalBook(record.ID, record.Title, record.Author, *record.AvailableCopies)

	case BookTypeEBook:
		if record.FileSizeMB == nil {
			return nil, fmt.Errorf("%w: %q has no file_size_mb", ErrMissingBookField, record.ID)
		}

		return NewEBook(record.ID, record.Title, record.Author, *record.FileSizeMB)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBookType, record.Type)
	}
}

// MemberFromRecord rebuilds a member without any borrowed books.
// The borrowed books are re-attached from the loan records when a whole Library is loaded.
func MemberFromRecord(record MemberRecord) (*Member, error) {
	return NewMember(record.MemberID, record.Name)
}
