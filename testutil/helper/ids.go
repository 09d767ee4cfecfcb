package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// GivenUniqueID returns a fresh UUIDv7 string, prefixed for readable test data.
func GivenUniqueID(t testing.TB, prefix string) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return prefix + id.String()
}
