package library

import (
	"fmt"
	"slices"
)

// Member is a registered library member and the books they currently hold.
type Member struct {
	id       string
	name     string
	borrowed []Book
}

// NewMember creates a Member without any borrowed books.
func NewMember(id, name string) (*Member, error) {
	if id == "" {
		return nil, ErrEmptyMemberID
	}

	return &Member{
		id:       id,
		name:     name,
		borrowed: make([]Book, 0),
	}, nil
}

// ID returns the member ID.
func (m *Member) ID() string {
	return m.id
}

// Name returns the member's name.
func (m *Member) Name() string {
	return m.name
}

// BorrowedBooks returns a copy of the books the member currently holds, in borrow order.
func (m *Member) BorrowedBooks() []Book {
	return slices.Clone(m.borrowed)
}

// Holds reports whether the member holds a book with the given ID.
func (m *Member) Holds(bookID string) bool {
	return m.indexOf(bookID) >= 0
}

// BorrowBook attaches the book to the member.
// It fails with ErrMemberHoldsBook if the member already holds a book with the same ID.
func (m *Member) BorrowBook(book Book) error {
	if book == nil {
		return ErrNilBook
	}

	if m.Holds(book.ID()) {
		return fmt.Errorf("%w: member %q, book %q", ErrMemberHoldsBook, m.id, book.ID())
	}

	m.borrowed = append(m.borrowed, book)

	return nil
}

// ReturnBook detaches the first held book with the same ID.
// It fails with ErrMemberDoesNotHoldBook if there is none.
func (m *Member) ReturnBook(book Book) error {
	if book == nil {
		return ErrNilBook
	}

	idx := m.indexOf(book.ID())
	if idx < 0 {
		return fmt.Errorf("%w: member %q, book %q", ErrMemberDoesNotHoldBook, m.id, book.ID())
	}

	m.borrowed = slices.Delete(m.borrowed, idx, idx+1)

	return nil
}

// Record converts the member to its persisted form, borrowed books are referenced by ID.
func (m *Member) Record() MemberRecord {
	bookIDs := make([]string, 0, len(m.borrowed))
	for _, book := range m.borrowed {
		bookIDs = append(bookIDs, book.ID())
	}

	return MemberRecord{
		MemberID:      m.id,
		Name:          m.name,
		BorrowedBooks: bookIDs,
	}
}

func (m *Member) String() string {
	return fmt.Sprintf("%s (ID: %s) - %d books borrowed", m.name, m.id, len(m.borrowed))
}

func (m *Member) indexOf(bookID string) int {
	return slices.IndexFunc(m.borrowed, func(b Book) bool {
		return b.ID() == bookID
	})
}
