package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-budget-registry/library"
	"github.com/AntonStoeckl/library-budget-registry/registry"
)

func Test_Member_Create(t *testing.T) {
	member := givenMember(t, "M001")

	assert.Equal(t, "M001", member.ID())
	assert.Equal(t, "Alice Johnson", member.Name())
	assert.Empty(t, member.BorrowedBooks())
}

func Test_NewMember_RequiresID(t *testing.T) {
	_, err := library.NewMember("", "Nobody")

	assert.ErrorIs(t, err, library.ErrEmptyMemberID)
	assert.ErrorIs(t, err, registry.ErrValidation)
}

func Test_Member_BorrowBook(t *testing.T) {
	// arrange
	member := givenMember(t, "M001")
	book := givenPhysicalBook(t, "B001", 3)

	// act
	err := member.BorrowBook(book)

	// assert
	require.NoError(t, err)
	require.Len(t, member.BorrowedBooks(), 1)
	assert.Same(t, book, member.BorrowedBooks()[0])
	assert.True(t, member.Holds("B001"))
}

func Test_Member_CannotBorrowSameBookIDTwice(t *testing.T) {
	member := givenMember(t, "M001")
	require.NoError(t, member.BorrowBook(givenPhysicalBook(t, "B001", 3)))

	err := member.BorrowBook(givenPhysicalBook(t, "B001", 1))

	assert.ErrorIs(t, err, library.ErrMemberHoldsBook)
	assert.ErrorIs(t, err, registry.ErrValidation)
	assert.Len(t, member.BorrowedBooks(), 1)
}

func Test_Member_ReturnBook(t *testing.T) {
	member := givenMember(t, "M001")
	first := givenPhysicalBook(t, "B001", 3)
	second := givenEBook(t, "E001", 1)
	require.NoError(t, member.BorrowBook(first))
	require.NoError(t, member.BorrowBook(second))

	err := member.ReturnBook(first)

	require.NoError(t, err)
	assert.Equal(t, []library.Book{second}, member.BorrowedBooks())
}

func Test_Member_CannotReturnUnborrowedBook(t *testing.T) {
	member := givenMember(t, "M001")

	err := member.ReturnBook(givenPhysicalBook(t, "B001", 3))

	assert.ErrorIs(t, err, library.ErrMemberDoesNotHoldBook)
	assert.ErrorIs(t, err, registry.ErrValidation)
}

func Test_Member_NilBook(t *testing.T) {
	member := givenMember(t, "M001")

	assert.ErrorIs(t, member.BorrowBook(nil), library.ErrNilBook)
	assert.ErrorIs(t, member.ReturnBook(nil), library.ErrNilBook)
}

func Test_Member_BorrowedBooksIsACopy(t *testing.T) {
	member := givenMember(t, "M001")
	require.NoError(t, member.BorrowBook(givenPhysicalBook(t, "B001", 3)))

	books := member.BorrowedBooks()
	books[0] = nil

	assert.NotNil(t, member.BorrowedBooks()[0])
}

func Test_Member_RecordAndRoundTrip(t *testing.T) {
	// arrange
	member := givenMember(t, "M001")
	require.NoError(t, member.BorrowBook(givenPhysicalBook(t, "B001", 3)))

	// act
	record := member.Record()
	restored, err := library.MemberFromRecord(record)

	// assert
	assert.Equal(t, library.MemberRecord{MemberID: "M001", Name: "Alice Johnson", BorrowedBooks: []string{"B001"}}, record)
	require.NoError(t, err)
	assert.Equal(t, member.ID(), restored.ID())
	assert.Equal(t, member.Name(), restored.Name())
	assert.Empty(t, restored.BorrowedBooks(), "borrowed books are re-attached from loans")
}

func Test_Member_String(t *testing.T) {
	result := givenMember(t, "M001").String()

	assert.Equal(t, "Alice Johnson (ID: M001) - 0 books borrowed", result)
}
