package library

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-budget-registry/registry"
	"github.com/AntonStoeckl/library-budget-registry/registry/filestore"
)

const documentIndent = "  "

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document converts the whole Library to its persisted form.
// Books and members are ordered by ID, loans keep their order.
func (l *Library) Document() Document {
	doc := Document{
		Books:   make([]BookRecord, 0, len(l.books)),
		Members: make([]MemberRecord, 0, len(l.members)),
		Loans:   make([]LoanRecord, 0, len(l.loans)),
	}

	for _, book := range l.Books() {
		doc.Books = append(doc.Books, book.Record())
	}

	for _, member := range l.Members() {
		doc.Members = append(doc.Members, member.Record())
	}

	for _, loan := range l.loans {
		doc.Loans = append(doc.Loans, loan.Record())
	}

	return doc
}

// MarshalDocument serializes the Library to an indented JSON document.
func (l *Library) MarshalDocument() ([]byte, error) {
	data, err := json.MarshalIndent(l.Document(), "", documentIndent)
	if err != nil {
		return nil, errors.Join(registry.ErrEncodingDocumentFailed, err)
	}

	return data, nil
}

// UnmarshalDocument REPLACES the whole in-memory state with the state described by the JSON document.
//
// Books are rebuilt first, then members, then loans, which re-attach the live book and member objects.
// Loans referencing a missing book or member are dropped silently (logged at warn level).
// If the document is malformed, the Library is left untouched.
func (l *Library) UnmarshalDocument(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Join(registry.ErrDecodingDocumentFailed, err)
	}

	if err := l.restore(doc); err != nil {
		return errors.Join(registry.ErrDecodingDocumentFailed, err)
	}

	return nil
}

// Save writes the Library as a JSON document to the file at path.
func (l *Library) Save(path string) error {
	return l.SaveTo(context.Background(), filestore.New(), path)
}

// Load REPLACES the whole in-memory state with the JSON document stored in the file at path.
//
// A missing file yields an error matching fs.ErrNotExist, a malformed one an error matching
// registry.ErrDecodingDocumentFailed. In both cases the Library is left untouched.
func (l *Library) Load(path string) error {
	return l.LoadFrom(context.Background(), filestore.New(), path)
}

// SaveTo writes the Library as a JSON document to the store under key.
func (l *Library) SaveTo(ctx context.Context, store registry.DocumentStore, key string) error {
	data, err := l.MarshalDocument()
	if err != nil {
		l.logError(logMsgSaveFailed, err, logAttrDocumentKey, key)
		return err
	}

	if saveErr := store.SaveDocument(ctx, key, data); saveErr != nil {
		l.logError(logMsgSaveFailed, saveErr, logAttrDocumentKey, key)
		return saveErr
	}

	l.logOperation(logMsgDocumentSaved, l.sizeLogArgs(logAttrDocumentKey, key)...)

	return nil
}

// LoadFrom REPLACES the whole in-memory state with the JSON document stored under key, see UnmarshalDocument.
func (l *Library) LoadFrom(ctx context.Context, store registry.DocumentStore, key string) error {
	data, err := store.LoadDocument(ctx, key)
	if err != nil {
		l.logError(logMsgLoadFailed, err, logAttrDocumentKey, key)
		return err
	}

	if decodeErr := l.UnmarshalDocument(data); decodeErr != nil {
		l.logError(logMsgLoadFailed, decodeErr, logAttrDocumentKey, key)
		return decodeErr
	}

	l.logOperation(logMsgDocumentLoaded, l.sizeLogArgs(logAttrDocumentKey, key)...)

	return nil
}

func (l *Library) restore(doc Document) error {
	books := make(map[string]Book, len(doc.Books))
	for _, record := range doc.Books {
		book, err := BookFromRecord(record)
		if err != nil {
			return err
		}

		if _, exists := books[book.ID()]; exists {
			return fmt.Errorf("%w: %q", ErrBookAlreadyExists, book.ID())
		}

		books[book.ID()] = book
	}

	members := make(map[string]*Member, len(doc.Members))
	for _, record := range doc.Members {
		member, err := MemberFromRecord(record)
		if err != nil {
			return err
		}

		if _, exists := members[member.ID()]; exists {
			return fmt.Errorf("%w: %q", ErrMemberAlreadyExists, member.ID())
		}

		members[member.ID()] = member
	}

	loans := make([]Loan, 0, len(doc.Loans))
	for _, record := range doc.Loans {
		book, bookFound := books[record.BookID]
		member, memberFound := members[record.MemberID]

		if !bookFound || !memberFound {
			l.logWarning(logMsgLoanDropped, logAttrBookID, record.BookID, logAttrMemberID, record.MemberID)
			continue
		}

		loan, err := LoanFromRecord(record, book, member)
		if err != nil {
			return err
		}

		if err = member.BorrowBook(book); err != nil {
			return err
		}

		loans = append(loans, loan)
	}

	l.books = books
	l.members = members
	l.loans = loans

	return nil
}

func (l *Library) sizeLogArgs(args ...any) []any {
	return append(args,
		logAttrBookCount, len(l.books),
		logAttrMemberCount, len(l.members),
		logAttrLoanCount, len(l.loans),
	)
}
