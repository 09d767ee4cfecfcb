package budget

import (
	"fmt"
	"slices"
	"strings"
)

// Category is a named, ordered list of expenses.
type Category struct {
	name     string
	expenses []*Expense
}

// NewCategory creates an empty Category, the name must not be empty.
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyCategoryName
	}

	return &Category{name: name, expenses: make([]*Expense, 0)}, nil
}

// CategoryFromRecord rebuilds a Category with all its expenses, the first invalid expense fails the whole record.
func CategoryFromRecord(record CategoryRecord) (*Category, error) {
	category, err := NewCategory(record.Name)
	if err != nil {
		return nil, err
	}

	for i, expenseRecord := range record.Expenses {
		expense, expenseErr := ExpenseFromRecord(expenseRecord)
		if expenseErr != nil {
			return nil, fmt.Errorf("category %q, expense %d: %w", record.Name, i+1, expenseErr)
		}

		category.expenses = append(category.expenses, expense)
	}

	return category, nil
}

// Name returns the unique name of the category.
func (c *Category) Name() string {
	return c.name
}

// AddExpense appends the expense.
func (c *Category) AddExpense(expense *Expense) error {
	if expense == nil {
		return ErrNilExpense
	}

	c.expenses = append(c.expenses, expense)

	return nil
}

// RemoveExpense removes the expense at the zero-based index.
// It reports false, and changes nothing, if the index is out of range.
func (c *Category) RemoveExpense(index int) bool {
	if index < 0 || index >= len(c.expenses) {
		return false
	}

	c.expenses = slices.Delete(c.expenses, index, index+1)

	return true
}

// Expenses returns a copy of the expense list, the expenses themselves are shared.
func (c *Category) Expenses() []*Expense {
	return slices.Clone(c.expenses)
}

// TotalAmount sums all expense amounts, it is 0 for an empty category.
func (c *Category) TotalAmount() float64 {
	total := 0.0
	for _, expense := range c.expenses {
		total += expense.Amount()
	}

	return total
}

// Describe renders the numbered expense listing, numbers start at 1 as used by Manager.RemoveExpense.
func (c *Category) Describe() string {
	if len(c.expenses) == 0 {
		return fmt.Sprintf("   No expenses in category: %s", c.name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n   Expenses in %s:", c.name)

	for i, expense := range c.expenses {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, expense)
	}

	return b.String()
}

// Record converts the category and its expenses to their persisted form.
func (c *Category) Record() CategoryRecord {
	expenses := make([]ExpenseRecord, 0, len(c.expenses))
	for _, expense := range c.expenses {
		expenses = append(expenses, expense.Record())
	}

	return CategoryRecord{Name: c.name, Expenses: expenses}
}

func (c *Category) String() string {
	return fmt.Sprintf("%s (%.2f) - %d expenses", c.name, c.TotalAmount(), len(c.expenses))
}
