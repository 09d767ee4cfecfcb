package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-budget-registry/budget"
	"github.com/AntonStoeckl/library-budget-registry/cmd/internal/cli"
	"github.com/AntonStoeckl/library-budget-registry/registry"
)

func Test_Run_BudgetScenario(t *testing.T) {
	// arrange
	path := givenDocumentFile(t)

	// act
	givenRun(t, "add-category", "-name", "Food")
	givenRun(t, "add-category", "-name", "Travel")
	givenRun(t, "add-expense", "-category", "Food", "-description", "Bread", "-amount", "2.5", "-date", "2026-01-02")
	givenRun(t, "add-expense", "-category", "Food", "-description", "Cheese", "-amount", "7", "-date", "2026-01-03")
	givenRun(t, "remove-expense", "-category", "Food", "-number", "1")
	listOut := givenRun(t, "list", "-category", "Food")
	reportOut := givenRun(t, "report")

	// assert
	assert.Equal(t, "\n   Expenses in Food:\n  1. Cheese - $7.00 2026-01-03\n", listOut)
	assert.Equal(
		t,
		"Budget overview:\n    Food (7.00) - 1 expenses\n    Travel (0.00) - 0 expenses\n\nOverall Total: $7.00\n",
		reportOut,
	)

	manager, err := budget.New()
	require.NoError(t, err)
	require.NoError(t, manager.Load(path))
	assert.InDelta(t, 7.0, manager.OverallTotal(), 0.0001)
}

func Test_Run_ListCategories(t *testing.T) {
	givenDocumentFile(t)
	assert.Equal(t, "No categories yet\n", givenRun(t, "categories"))

	givenRun(t, "add-category", "-name", "Travel")
	givenRun(t, "add-category", "-name", "Food")

	assert.Equal(t, "Food\nTravel\n", givenRun(t, "categories"))
}

func Test_Run_RemoveCategory(t *testing.T) {
	givenDocumentFile(t)
	givenRun(t, "add-category", "-name", "Food")

	out := givenRun(t, "remove-category", "-name", "Food")

	assert.Equal(t, "Category 'Food' removed\n", out)
	assert.Equal(t, "No categories yet\n", givenRun(t, "report"))
}

func Test_Run_Failures(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{name: "no command", args: nil, expectedErr: errMissingCommand},
		{name: "unknown command", args: []string{"forecast"}, expectedErr: cli.ErrUnknownCommand},
		{name: "duplicate category", args: []string{"add-category", "-name", "Food"}, expectedErr: budget.ErrCategoryAlreadyExists},
		{name: "unknown category", args: []string{"add-expense", "-category", "Hobby", "-description", "x", "-amount", "1"}, expectedErr: budget.ErrCategoryNotFound},
		{name: "invalid amount", args: []string{"add-expense", "-category", "Food", "-description", "x", "-amount", "-3"}, expectedErr: budget.ErrInvalidAmount},
		{name: "infinite amount", args: []string{"add-expense", "-category", "Food", "-description", "x", "-amount", "Inf"}, expectedErr: budget.ErrInvalidAmount},
		{name: "invalid date", args: []string{"add-expense", "-category", "Food", "-description", "x", "-amount", "3", "-date", "3.1.2026"}, expectedErr: registry.ErrInvalidDate},
		{name: "expense number out of range", args: []string{"remove-expense", "-category", "Food", "-number", "1"}, expectedErr: registry.ErrNotFound},
		{name: "missing flag", args: []string{"list"}, expectedErr: cli.ErrMissingFlag},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			givenDocumentFile(t)
			givenRun(t, "add-category", "-name", "Food")

			err := run(context.Background(), tc.args, &bytes.Buffer{}, &bytes.Buffer{})

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func givenDocumentFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "budget.json")
	t.Setenv("REGISTRY_STORE", "file")
	t.Setenv("REGISTRY_FILE", path)
	t.Setenv("REGISTRY_LOG_LEVEL", "error")

	return path
}

func givenRun(t *testing.T, args ...string) string {
	t.Helper()
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), args, &stdout, &bytes.Buffer{}), "error in arranging test data")

	return stdout.String()
}
