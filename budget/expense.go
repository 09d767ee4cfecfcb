package budget

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

// Expense is a single spending with a strictly positive amount.
type Expense struct {
	description string
	amount      float64
	date        time.Time
}

// NewExpense creates an Expense. A zero date defaults to today.
func NewExpense(description string, amount float64, date time.Time) (*Expense, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	return &Expense{
		description: description,
		amount:      amount,
		date:        registry.ToDate(date),
	}, nil
}

// ExpenseFromRecord rebuilds an Expense from its persisted form, an empty date defaults to today.
func ExpenseFromRecord(record ExpenseRecord) (*Expense, error) {
	var date time.Time

	if record.Date != "" {
		parsed, err := registry.ParseDate(record.Date)
		if err != nil {
			return nil, err
		}

		date = parsed
	}

	return NewExpense(record.Description, record.Amount, date)
}

// Description returns what the money was spent on.
func (e *Expense) Description() string {
	return e.description
}

// Amount returns the strictly positive amount spent.
func (e *Expense) Amount() float64 {
	return e.amount
}

// Date returns the calendar date of the expense.
func (e *Expense) Date() time.Time {
	return e.date
}

// SetAmount replaces the amount, an invalid value leaves the previous amount in place.
func (e *Expense) SetAmount(amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	e.amount = amount

	return nil
}

// Record converts the expense to its persisted form.
func (e *Expense) Record() ExpenseRecord {
	return ExpenseRecord{
		Description: e.description,
		Amount:      e.amount,
		Date:        registry.FormatDate(e.date),
	}
}

func (e *Expense) String() string {
	return fmt.Sprintf("%s - $%.2f %s", e.description, e.amount, registry.FormatDate(e.date))
}

func validateAmount(amount float64) error {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w, got %s", ErrInvalidAmount, strconv.FormatFloat(amount, 'f', -1, 64))
	}

	return nil
}
