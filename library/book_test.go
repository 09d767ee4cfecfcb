package library_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-budget-registry/library"
	"github.com/AntonStoeckl/library-budget-registry/registry"
)

func Test_PhysicalBook_Create(t *testing.T) {
	book := givenPhysicalBook(t, "B001", 3)

	assert.Equal(t, "B001", book.ID())
	assert.Equal(t, "Python Programming", book.Title())
	assert.Equal(t, "John Doe", book.Author())
	assert.Equal(t, 3, book.AvailableCopies())
}

func Test_PhysicalBook_BorrowDecreasesAndReturnIncreasesCopies(t *testing.T) {
	// arrange
	book := givenPhysicalBook(t, "B001", 3)

	// act
	err := book.Borrow()

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, book.AvailableCopies())

	book.ReturnBook()
	assert.Equal(t, 3, book.AvailableCopies())
}

func Test_PhysicalBook_BorrowFailsWithoutCopies(t *testing.T) {
	book := givenPhysicalBook(t, "B001", 0)

	err := book.Borrow()

	assert.ErrorIs(t, err, library.ErrNoCopiesAvailable)
	assert.ErrorIs(t, err, registry.ErrNotAvailable)
	assert.Equal(t, 0, book.AvailableCopies())
}

func Test_PhysicalBook_OverReturnIsAccepted(t *testing.T) {
	book := givenPhysicalBook(t, "B001", 1)

	book.ReturnBook()

	assert.Equal(t, 2, book.AvailableCopies(), "returning has no upper bound")
}

func Test_EBook_BorrowAndReturnAlwaysSucceed(t *testing.T) {
	book := givenEBook(t, "E001", 5.2)

	assert.NoError(t, book.Borrow())
	assert.NoError(t, book.Borrow())
	book.ReturnBook()
	assert.Equal(t, 5.2, book.FileSizeMB())
}

func Test_NewBook_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		build       func() (library.Book, error)
		expectedErr error
	}{
		{
			name: "negative copies",
			build: func() (library.Book, error) {
				return library.NewPhysicalBook("B001", "Title", "Author", -1)
			},
			expectedErr: library.ErrNegativeCopies,
		},
		{
			name: "negative file size",
			build: func() (library.Book, error) {
				return library.NewEBook("E001", "Title", "Author", -1.0)
			},
			expectedErr: library.ErrNegativeFileSize,
		},
		{
			name: "file size not a number",
			build: func() (library.Book, error) {
				return library.NewEBook("E001", "Title", "Author", math.NaN())
			},
			expectedErr: library.ErrInvalidFileSize,
		},
		{
			name: "infinite file size",
			build: func() (library.Book, error) {
				return library.NewEBook("E001", "Title", "Author", math.Inf(1))
			},
			expectedErr: library.ErrInvalidFileSize,
		},
		{
			name: "empty physical book id",
			build: func() (library.Book, error) {
				return library.NewPhysicalBook("", "Title", "Author", 1)
			},
			expectedErr: library.ErrEmptyBookID,
		},
		{
			name: "empty e-book id",
			build: func() (library.Book, error) {
				return library.NewEBook("", "Title", "Author", 1.0)
			},
			expectedErr: library.ErrEmptyBookID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorIs(t, err, registry.ErrValidation)
		})
	}
}

func Test_SameBook_ComparesByID(t *testing.T) {
	book := givenPhysicalBook(t, "B001", 3)
	other, err := library.NewPhysicalBook("B001", "Different Title", "Other Author", 1)
	require.NoError(t, err)

	assert.True(t, library.SameBook(book, other))
	assert.False(t, library.SameBook(book, givenEBook(t, "E001", 1)))
	assert.False(t, library.SameBook(book, nil))
}

func Test_Book_String(t *testing.T) {
	assert.Equal(t,
		"Python Programming by John Doe (ID: B001) - 3 copies available",
		givenPhysicalBook(t, "B001", 3).String())

	assert.Equal(t,
		"Design Patterns by Jane Smith (ID: E001) - 5.2 MB",
		givenEBook(t, "E001", 5.2).String())
}

func Test_Book_Record(t *testing.T) {
	t.Run("physical book", func(t *testing.T) {
		record := givenPhysicalBook(t, "B001", 3).Record()

		assert.Equal(t, library.BookTypePhysical, record.Type)
		assert.Equal(t, "B001", record.ID)
		require.NotNil(t, record.AvailableCopies)
		assert.Equal(t, 3, *record.AvailableCopies)
		assert.Nil(t, record.FileSizeMB)
	})

	t.Run("e-book", func(t *testing.T) {
		record := givenEBook(t, "E001", 5.2).Record()

		assert.Equal(t, library.BookTypeEBook, record.Type)
		require.NotNil(t, record.FileSizeMB)
		assert.Equal(t, 5.2, *record.FileSizeMB)
		assert.Nil(t, record.AvailableCopies)
	})
}

func Test_BookFromRecord_RoundTrip(t *testing.T) {
	for _, original := range []library.Book{givenPhysicalBook(t, "B001", 0), givenEBook(t, "E001", 3.5)} {
		t.Run(original.Record().Type, func(t *testing.T) {
			restored, err := library.BookFromRecord(original.Record())

			require.NoError(t, err)
			assert.IsType(t, original, restored)
			assert.Equal(t, original.Record(), restored.Record())
		})
	}
}

func Test_BookFromRecord_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		_, err := library.BookFromRecord(library.BookRecord{Type: "AudioBook", ID: "A001"})

		assert.ErrorIs(t, err, library.ErrUnknownBookType)
	})

	t.Run("physical book without copies", func(t *testing.T) {
		_, err := library.BookFromRecord(library.BookRecord{Type: library.BookTypePhysical, ID: "B001"})

		assert.ErrorIs(t, err, library.ErrMissingBookField)
	})

	t.Run("e-book without size", func(t *testing.T) {
		_, err := library.BookFromRecord(library.BookRecord{Type: library.BookTypeEBook, ID: "E001"})

		assert.ErrorIs(t, err, library.ErrMissingBookField)
	})
}

// Test helper functions with t.Helper() for better error reporting

func givenPhysicalBook(t *testing.T, id string, copies int) *library.PhysicalBook {
	t.Helper()
	book, err := library.NewPhysicalBook(id, "Python Programming", "John Doe", copies)
	require.NoError(t, err, "error in arranging test data")

	return book
}

func givenEBook(t *testing.T, id string, sizeMB float64) *library.EBook {
	t.Helper()
	book, err := library.NewEBook(id, "Design Patterns", "Jane Smith", sizeMB)
	require.NoError(t, err, "error in arranging test data")

	return book
}

func givenMember(t *testing.T, id string) *library.Member {
	t.Helper()
	member, err := library.NewMember(id, "Alice Johnson")
	require.NoError(t, err, "error in arranging test data")

	return member
}
