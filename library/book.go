package library

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// BookTypePhysical is the discriminator of PhysicalBook records.
	BookTypePhysical = "PhysicalBook"

	// BookTypeEBook is the discriminator of EBook records.
	BookTypeEBook = "EBook"
)

// Book is the capability set shared by all book variants.
//
// The set of variants is closed: only *PhysicalBook and *EBook implement Book.
type Book interface {
	ID() string
	Title() string
	Author() string

	// Borrow takes one copy, it fails with ErrNoCopiesAvailable for an exhausted limited variant.
	Borrow() error

	// ReturnBook gives one copy back.
	ReturnBook()

	// Record converts the book to its persisted form, including the type discriminator.
	Record() BookRecord

	String() string

	isBook()
}

// SameBook reports whether two books have the same identity.
func SameBook(a, b Book) bool {
	if a == nil || b == nil {
		return false
	}

	return a.ID() == b.ID()
}

type bookInfo struct {
	id     string
	title  string
	author string
}

func (b bookInfo) ID() string {
	return b.id
}

func (b bookInfo) Title() string {
	return b.title
}

func (b bookInfo) Author() string {
	return b.author
}

func (b bookInfo) describe() string {
	return fmt.Sprintf("%s by %s (ID: %s)", b.title, b.author, b.id)
}

func (bookInfo) isBook() {}

// PhysicalBook is a book with a limited number of copies on the shelf.
type PhysicalBook struct {
	bookInfo
	availableCopies int
}

// NewPhysicalBook creates a PhysicalBook, the available copy count must not be negative.
func NewPhysicalBook(id, title, author string, availableCopies int) (*PhysicalBook, error) {
	if id == "" {
		return nil, ErrEmptyBookID
	}

	if availableCopies < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCopies, availableCopies)
	}

	return &PhysicalBook{
		bookInfo:        bookInfo{id: id, title: title, author: author},
		availableCopies: availableCopies,
	}, nil
}

// AvailableCopies returns the number of copies currently on the shelf.
func (b *PhysicalBook) AvailableCopies() int {
	return b.availableCopies
}

// Borrow takes one copy off the shelf.
func (b *PhysicalBook) Borrow() error {
	if b.availableCopies <= 0 {
		return fmt.Errorf("%w: %q", ErrNoCopiesAvailable, b.title)
	}

	b.availableCopies--

	return nil
}

// ReturnBook puts one copy back on the shelf.
// There is no upper bound: returning more copies than were ever lent is accepted.
func (b *PhysicalBook) ReturnBook() {
	b.availableCopies++
}

// Record implements Book.
func (b *PhysicalBook) Record() BookRecord {
	copies := b.availableCopies

	return BookRecord{
		Type:            BookTypePhysical,
		ID:              b.id,
		Title:           b.title,
		Author:          b.author,
		AvailableCopies: &copies,
	}
}

func (b *PhysicalBook) String() string {
	return b.describe() + " - " + strconv.Itoa(b.availableCopies) + " copies available"
}

// EBook is a book that can be lent to any number of members at the same time.
type EBook struct {
	bookInfo
	fileSizeMB float64
}

// NewEBook creates an EBook, the file size is informational and must be a finite, non-negative number.
func NewEBook(id, title, author string, fileSizeMB float64) (*EBook, error) {
	if id == "" {
		return nil, ErrEmptyBookID
	}

	if math.IsNaN(fileSizeMB) || math.IsInf(fileSizeMB, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidFileSize, fileSizeMB)
	}

	if fileSizeMB < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeFileSize, fileSizeMB)
	}

	return &EBook{
		bookInfo:   bookInfo{id: id, title: title, author: author},
		fileSizeMB: fileSizeMB,
	}, nil
}

// FileSizeMB returns the size of the e-book file in megabytes.
func (b *EBook) FileSizeMB() float64 {
	return b.fileSizeMB
}

// Borrow always succeeds.
func (b *EBook) Borrow() error {
	return nil
}

// ReturnBook always succeeds.
func (b *EBook) ReturnBook() {}

// Record implements Book.
func (b *EBook) Record() BookRecord {
	size := b.fileSizeMB

	return BookRecord{
		Type:       BookTypeEBook,
		ID:         b.id,
		Title:      b.title,
		Author:     b.author,
		FileSizeMB: &size,
	}
}

func (b *EBook) String() string {
	return b.describe() + " - " + strconv.FormatFloat(b.fileSizeMB, 'f', -1, 64) + " MB"
}
