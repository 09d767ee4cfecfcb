package budget

import (
	"errors"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

var (
	// ErrCategoryAlreadyExists is returned when adding a category with a name that is already registered.
	ErrCategoryAlreadyExists = registry.Kind("category already exists", registry.ErrAlreadyExists)

	// ErrCategoryNotFound is returned when a category name is not registered.
	ErrCategoryNotFound = registry.Kind("category not found", registry.ErrNotFound)

	// ErrInvalidAmount is returned when an expense amount is zero or negative.
	ErrInvalidAmount = registry.Kind("expense amount should be greater than 0", registry.ErrValidation)

	// ErrEmptyCategoryName is returned when a category is built without a name.
	ErrEmptyCategoryName = registry.Kind("category name must not be empty", registry.ErrValidation)

	// ErrNilExpense is returned when a nil expense is added to a category.
	ErrNilExpense = registry.Kind("expense must not be nil", registry.ErrValidation)
)

// ErrNilClock is returned by WithClock when no clock is supplied.
var ErrNilClock = errors.New("clock must not be nil")
