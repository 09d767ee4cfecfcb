package library_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-budget-registry/library"
	"github.com/AntonStoeckl/library-budget-registry/registry"
	"github.com/AntonStoeckl/library-budget-registry/registry/filestore"
	"github.com/AntonStoeckl/library-budget-registry/testutil/helper"
)

func Test_SaveAndLoad_RestoresEquivalentState(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library.json")
	lib := givenLibraryWithLoans(t)
	require.NoError(t, lib.Save(path))

	restored := givenLibrary(t)

	// act
	err := restored.Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, lib.Document(), restored.Document())
	assert.Equal(t, lib.String(), restored.String())

	book, ok := restored.Book("B001")
	require.True(t, ok)
	physical, isPhysical := book.(*library.PhysicalBook)
	require.True(t, isPhysical)
	assert.Equal(t, 1, physical.AvailableCopies())

	ebook, ok := restored.Book("E001")
	require.True(t, ok)
	assert.IsType(t, &library.EBook{}, ebook)

	member, ok := restored.Member("M001")
	require.True(t, ok)
	held := member.BorrowedBooks()
	require.Len(t, held, 2)
	assert.Same(t, book, held[0])
	assert.Same(t, ebook, held[1])

	loans := restored.Loans()
	require.Len(t, loans, 3)
	assert.Same(t, member, loans[0].Member())
	assert.Same(t, book, loans[0].Book())
}

func Test_Save_WritesTheDocumentFormat(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library.json")
	lib := givenLibraryWithLoans(t)

	// act
	err := lib.Save(path)

	// assert
	require.NoError(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)

	content := string(data)
	assert.Contains(t, content, "\n  \"books\": [")
	assert.Contains(t, content, `"type": "PhysicalBook"`)
	assert.Contains(t, content, `"available_copies": 1`)
	assert.Contains(t, content, `"type": "EBook"`)
	assert.Contains(t, content, `"file_size_mb": 2.5`)
	assert.Contains(t, content, `"member_id": "M001"`)
	assert.Contains(t, content, `"borrowed_books": [`)
	assert.Contains(t, content, `"date_borrowed": "2026-02-20"`)
}

func Test_Save_EmptyLibraryWritesEmptyArrays(t *testing.T) {
	lib := givenLibrary(t)

	data, err := lib.MarshalDocument()

	require.NoError(t, err)
	assert.JSONEq(t, `{"books": [], "members": [], "loans": []}`, string(data))
}

func Test_Load_MissingFile_LeavesStateUntouched(t *testing.T) {
	// arrange
	lib := givenLibraryWithLoans(t)
	before := lib.Document()

	// act
	err := lib.Load(filepath.Join(t.TempDir(), "missing.json"))

	// assert
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorIs(t, err, registry.ErrDocumentNotFound)
	assert.Equal(t, before, lib.Document())
}

func Test_UnmarshalDocument_Failures_LeaveStateUntouched(t *testing.T) {
	testCases := []struct {
		name        string
		document    string
		expectedErr error
	}{
		{
			name:        "malformed json",
			document:    `{"books": [`,
			expectedErr: registry.ErrDecodingDocumentFailed,
		},
		{
			name:        "unknown book type",
			document:    `{"books": [{"type": "AudioBook", "id": "A1", "title": "T", "author": "A"}], "members": [], "loans": []}`,
			expectedErr: library.ErrUnknownBookType,
		},
		{
			name:        "physical book without copies",
			document:    `{"books": [{"type": "PhysicalBook", "id": "P1", "title": "T", "author": "A"}], "members": [], "loans": []}`,
			expectedErr: library.ErrMissingBookField,
		},
		{
			name:        "duplicate book id",
			document:    `{"books": [{"type": "EBook", "id": "E1", "title": "T", "author": "A", "file_size_mb": 1}, {"type": "EBook", "id": "E1", "title": "T", "author": "A", "file_size_mb": 1}], "members": [], "loans": []}`,
			expectedErr: library.ErrBookAlreadyExists,
		},
		{
			name:        "duplicate member id",
			document:    `{"books": [], "members": [{"member_id": "M1", "name": "A", "borrowed_books": []}, {"member_id": "M1", "name": "B", "borrowed_books": []}], "loans": []}`,
			expectedErr: library.ErrMemberAlreadyExists,
		},
		{
			name:        "invalid loan date",
			document:    `{"books": [{"type": "EBook", "id": "E1", "title": "T", "author": "A", "file_size_mb": 1}], "members": [{"member_id": "M1", "name": "A", "borrowed_books": ["E1"]}], "loans": [{"book_id": "E1", "member_id": "M1", "date_borrowed": "yesterday"}]}`,
			expectedErr: registry.ErrInvalidDate,
		},
		{
			name:        "duplicate loan",
			document:    `{"books": [{"type": "EBook", "id": "E1", "title": "T", "author": "A", "file_size_mb": 1}], "members": [{"member_id": "M1", "name": "A", "borrowed_books": ["E1"]}], "loans": [{"book_id": "E1", "member_id": "M1", "date_borrowed": "2026-01-01"}, {"book_id": "E1", "member_id": "M1", "date_borrowed": "2026-01-02"}]}`,
			expectedErr: library.ErrMemberHoldsBook,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			lib := givenLibraryWithLoans(t)
			before := lib.Document()

			// act
			err := lib.UnmarshalDocument([]byte(tc.document))

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorIs(t, err, registry.ErrDecodingDocumentFailed)
			assert.Equal(t, before, lib.Document())
		})
	}
}

func Test_UnmarshalDocument_DropsLoansWithMissingReferences(t *testing.T) {
	// arrange
	logger, spy := helper.NewSpyLogger()
	lib, err := library.New(library.WithLogger(logger))
	require.NoError(t, err)

	document := `{
		"books": [{"type": "EBook", "id": "E1", "title": "T", "author": "A", "file_size_mb": 1}],
		"members": [{"member_id": "M1", "name": "A", "borrowed_books": ["E1"]}],
		"loans": [
			{"book_id": "E1", "member_id": "M1", "date_borrowed": "2026-01-01"},
			{"book_id": "GONE", "member_id": "M1", "date_borrowed": "2026-01-01"},
			{"book_id": "E1", "member_id": "GONE", "date_borrowed": "2026-01-01"}
		]
	}`

	// act
	err = lib.UnmarshalDocument([]byte(document))

	// assert
	require.NoError(t, err)
	assert.Len(t, lib.Loans(), 1)
	member, ok := lib.Member("M1")
	require.True(t, ok)
	assert.True(t, member.Holds("E1"))
	assert.True(t, spy.HasLogWithAttribute(slogWarn, "loan dropped, it references a missing book or member", "book_id", "GONE"))
	assert.True(t, spy.HasLogWithAttribute(slogWarn, "loan dropped, it references a missing book or member", "member_id", "GONE"))
}

func Test_UnmarshalDocument_ReplacesExistingState(t *testing.T) {
	// arrange
	lib := givenLibraryWithLoans(t)
	document := `{"books": [{"type": "PhysicalBook", "id": "X1", "title": "T", "author": "A", "available_copies": 4}], "members": [], "loans": []}`

	// act
	err := lib.UnmarshalDocument([]byte(document))

	// assert
	require.NoError(t, err)
	assert.Len(t, lib.Books(), 1)
	assert.Empty(t, lib.Members())
	assert.Empty(t, lib.Loans())
	_, ok := lib.Book("B001")
	assert.False(t, ok)
}

func Test_LoadedLibrary_KeepsWorking(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, givenLibraryWithLoans(t).Save(path))
	lib := givenLibrary(t)
	require.NoError(t, lib.Load(path))

	// act
	returnErr := lib.ReturnBook("M001", "B001")
	_, borrowErr := lib.BorrowBook("M002", "B001")

	// assert
	assert.NoError(t, returnErr)
	assert.ErrorIs(t, borrowErr, library.ErrBookAlreadyBorrowed)
	assert.Len(t, lib.Loans(), 2)
}

func Test_SaveTo_LogsAndPropagatesStoreFailures(t *testing.T) {
	// arrange
	logger, spy := helper.NewSpyLogger()
	lib, err := library.New(library.WithLogger(logger))
	require.NoError(t, err)

	// act
	err = lib.SaveTo(context.Background(), filestore.New(), "")

	// assert
	assert.ErrorIs(t, err, registry.ErrEmptyDocumentKey)
	assert.True(t, spy.HasErrorLog("failed to save library document"))
}

func Test_SaveToAndLoadFrom_LogSuccess(t *testing.T) {
	// arrange
	logger, spy := helper.NewSpyLogger()
	lib, err := library.New(library.WithLogger(logger))
	require.NoError(t, err)
	key := filepath.Join(t.TempDir(), "library.json")
	store := filestore.New()

	// act
	saveErr := lib.SaveTo(context.Background(), store, key)
	loadErr := lib.LoadFrom(context.Background(), store, key)

	// assert
	require.NoError(t, saveErr)
	require.NoError(t, loadErr)
	assert.True(t, spy.HasLogWithAttribute(slogInfo, "library document saved", "book_count", 0))
	assert.True(t, spy.HasInfoLog("library document loaded"))
}

// givenLibraryWithLoans builds a library where M001 holds B001 and E001, and M002 holds B001.
func givenLibraryWithLoans(t *testing.T) *library.Library {
	t.Helper()
	lib := givenLibrary(t)
	givenRegistered(t, lib, givenPhysicalBook(t, "B001", 3), givenMember(t, "M001"))
	givenRegistered(t, lib, givenEBook(t, "E001", 2.5), givenMember(t, "M002"))

	for _, pair := range [][2]string{{"M001", "B001"}, {"M001", "E001"}, {"M002", "B001"}} {
		_, err := lib.BorrowBook(pair[0], pair[1])
		require.NoError(t, err, "error in arranging test data")
	}

	return lib
}
