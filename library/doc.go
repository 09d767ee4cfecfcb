// Package library implements the lending registry of a small library:
// books (physical copies or e-books), members, and the active loans linking them.
//
// Book is a closed sum type with the variants *PhysicalBook (limited copies) and *EBook
// (unlimited, borrowing always succeeds). Library is the registry that owns all books,
// members, and loans and enforces the cross-entity rules. BorrowBook checks, in this order:
//
//  1. the member exists (ErrMemberNotFound)
//  2. the book exists (ErrBookNotFound)
//  3. the member does not hold the book yet (ErrBookAlreadyBorrowed)
//  4. a copy is available (ErrBookNotAvailable)
//
// so the reported error is deterministic when several rules are violated at once.
//
// A Library round-trips through a JSON document with the top-level keys
// "books", "members", and "loans". Each book carries a "type" discriminator
// ("PhysicalBook" or "EBook") so the right variant is rebuilt on load.
//
// Usage:
//
//	lib, _ := library.New(library.WithLogger(slog.Default()))
//	book, _ := library.NewPhysicalBook("B1", "Learning Domain-Driven Design", "Vlad Khononov", 1)
//	member, _ := library.NewMember("M1", "Alice")
//	_ = lib.AddBook(book)
//	_ = lib.AddMember(member)
//	loan, err := lib.BorrowBook("M1", "B1")
//	err = lib.Save("library.json")
package library
