package budget

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

// Manager is the registry owning all budget categories.
//
// It is not safe for concurrent use.
type Manager struct {
	categories map[string]*Category
	clock      registry.Clock
	logger     registry.Logger
}

// Option defines a functional option for configuring Manager.
type Option func(*Manager) error

// WithLogger sets the logger for the Manager.
// Info level: categories and expenses added or removed, documents saved and loaded.
// Error level: failures to save or load a document.
func WithLogger(logger registry.Logger) Option {
	return func(m *Manager) error {
		m.logger = logger
		return nil
	}
}

// WithClock sets the clock used to date expenses added without a date.
func WithClock(clock registry.Clock) Option {
	return func(m *Manager) error {
		if clock == nil {
			return ErrNilClock
		}

		m.clock = clock

		return nil
	}
}

// New creates an empty Manager with optional configuration.
func New(options ...Option) (*Manager, error) {
	m := &Manager{
		categories: make(map[string]*Category),
		clock:      time.Now,
	}

	for _, option := range options {
		if err := option(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// AddCategory registers a new, empty category.
func (m *Manager) AddCategory(name string) error {
	if _, exists := m.categories[name]; exists {
		return fmt.Errorf("%w: %q", ErrCategoryAlreadyExists, name)
	}

	category, err := NewCategory(name)
	if err != nil {
		return err
	}

	m.categories[name] = category
	m.logOperation(logMsgCategoryAdded, logAttrCategory, name)

	return nil
}

// RemoveCategory removes the category with all its expenses, it reports false for an unknown name.
func (m *Manager) RemoveCategory(name string) bool {
	if _, exists := m.categories[name]; !exists {
		return false
	}

	delete(m.categories, name)
	m.logOperation(logMsgCategoryRemoved, logAttrCategory, name)

	return true
}

// Category returns the registered category with the given name.
func (m *Manager) Category(name string) (*Category, bool) {
	category, ok := m.categories[name]
	return category, ok
}

// HasCategory reports whether a category with the given name is registered.
func (m *Manager) HasCategory(name string) bool {
	_, ok := m.categories[name]
	return ok
}

// CategoryNames returns all category names in lexical order.
func (m *Manager) CategoryNames() []string {
	return slices.Sorted(maps.Keys(m.categories))
}

// Categories returns all categories ordered by name.
func (m *Manager) Categories() []*Category {
	categories := make([]*Category, 0, len(m.categories))
	for _, name := range m.CategoryNames() {
		categories = append(categories, m.categories[name])
	}

	return categories
}

// AddExpense creates an expense and appends it to the category.
//
// It reports false with a nil error if the category is unknown.
// An invalid amount yields an error matching ErrInvalidAmount and adds nothing.
// A zero date is replaced by the Manager's clock.
func (m *Manager) AddExpense(categoryName, description string, amount float64, date time.Time) (bool, error) {
	category, ok := m.categories[categoryName]
	if !ok {
		return false, nil
	}

	if date.IsZero() {
		date = m.clock()
	}

	expense, err := NewExpense(description, amount, date)
	if err != nil {
		return false, err
	}

	if err = category.AddExpense(expense); err != nil {
		return false, err
	}

	m.logOperation(logMsgExpenseAdded, logAttrCategory, categoryName, logAttrAmount, amount)

	return true, nil
}

// RemoveExpense removes the expense with the given 1-based number, as rendered by Category.Describe.
// It reports false if the category is unknown or the number is out of range.
func (m *Manager) RemoveExpense(categoryName string, number int) bool {
	category, ok := m.categories[categoryName]
	if !ok {
		return false
	}

	if !category.RemoveExpense(number - 1) {
		return false
	}

	m.logOperation(logMsgExpenseRemoved, logAttrCategory, categoryName, logAttrExpenseNumber, number)

	return true
}

// DescribeCategory renders the numbered expense listing of the category.
func (m *Manager) DescribeCategory(name string) (string, error) {
	category, ok := m.categories[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrCategoryNotFound, name)
	}

	return category.Describe(), nil
}

// TotalByCategory maps every category name to the sum of its expenses.
func (m *Manager) TotalByCategory() map[string]float64 {
	totals := make(map[string]float64, len(m.categories))
	for name, category := range m.categories {
		totals[name] = category.TotalAmount()
	}

	return totals
}

// OverallTotal sums the expenses of all categories.
func (m *Manager) OverallTotal() float64 {
	total := 0.0
	for _, category := range m.Categories() {
		total += category.TotalAmount()
	}

	return total
}

func (m *Manager) String() string {
	if len(m.categories) == 0 {
		return "No categories yet"
	}

	var b strings.Builder
	b.WriteString("Budget overview:\n")

	for _, category := range m.Categories() {
		fmt.Fprintf(&b, "    %s\n", category)
	}

	fmt.Fprintf(&b, "\nOverall Total: $%.2f", m.OverallTotal())

	return b.String()
}
