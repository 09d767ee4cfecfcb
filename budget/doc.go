// Package budget implements a small personal budget tracker:
// named categories, each holding an ordered list of expenses.
//
// Manager is the registry owning all categories. Every Expense amount must be strictly positive,
// this is validated on construction and on every SetAmount.
//
// A Manager round-trips through a JSON document of the form
//
//	{"categories": {"<name>": {"name": "<name>", "expenses": [{"description": "...", "amount": 12.5, "date": "2026-01-31"}]}}}
//
// Usage:
//
//	manager, _ := budget.New()
//	_ = manager.AddCategory("Groceries")
//	added, err := manager.AddExpense("Groceries", "Weekly shopping", 54.20, time.Time{})
//	fmt.Println(manager)
//	err = manager.Save("budget.json")
package budget
