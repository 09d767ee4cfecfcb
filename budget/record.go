package budget

// ExpenseRecord is the persisted form of an Expense.
type ExpenseRecord struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}

// CategoryRecord is the persisted form of a Category.
type CategoryRecord struct {
	Name     string          `json:"name"`
	Expenses []ExpenseRecord `json:"expenses"`
}

// Document is the persisted form of a whole Manager, categories are keyed by name.
type Document struct {
	Categories map[string]CategoryRecord `json:"categories"`
}
