package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/AntonStoeckl/library-budget-registry/budget"
	"github.com/AntonStoeckl/library-budget-registry/cmd/internal/cli"
	"github.com/AntonStoeckl/library-budget-registry/registry"
)

var (
	errMissingCommand  = errors.New("missing command")
	errExpenseNotFound = registry.Kind("expense not found", registry.ErrNotFound)
)

// command applies one sub-command to the budget and reports whether it changed the budget.
type command func(manager *budget.Manager, args []string, out io.Writer) (bool, error)

var commands = map[string]command{
	"add-category":    addCategory,
	"remove-category": removeCategory,
	"add-expense":     addExpense,
	"remove-expense":  removeExpense,
	"categories":      listCategories,
	"list":            listExpenses,
	"report":          report,
}

func execute(ctx context.Context, env *cli.Env, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", cli.ErrUnknownCommand, name)
	}

	manager, err := budget.New(budget.WithLogger(env.Logger))
	if err != nil {
		return err
	}

	if loadErr := manager.LoadFrom(ctx, env.Store, env.Config.Document); loadErr != nil && !cli.IsMissingDocument(loadErr) {
		return loadErr
	}

	mutated, err := cmd(manager, args, out)
	if err != nil {
		return err
	}

	if !mutated {
		return nil
	}

	return manager.SaveTo(ctx, env.Store, env.Config.Document)
}

func addCategory(manager *budget.Manager, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("add-category")
	name := fs.String("name", "", "category name")

	if err := parse(fs, args, "name"); err != nil {
		return false, err
	}

	if err := manager.AddCategory(*name); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintf(out, "Category '%s' added\n", *name)

	return true, nil
}

func removeCategory(manager *budget.Manager, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("remove-category")
	name := fs.String("name", "", "category name")

	if err := parse(fs, args, "name"); err != nil {
		return false, err
	}

	if !manager.RemoveCategory(*name) {
		return false, fmt.Errorf("%w: %q", budget.ErrCategoryNotFound, *name)
	}

	_, _ = fmt.Fprintf(out, "Category '%s' removed\n", *name)

	return true, nil
}

func addExpense(manager *budget.Manager, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("add-expense")
	category := fs.String("category", "", "category name")
	description := fs.String("description", "", "expense description")
	amount := fs.Float64("amount", 0, "expense amount, greater than 0")
	date := fs.String("date", "", "expense date as YYYY-MM-DD, today when empty")

	if err := parse(fs, args, "category", "description", "amount"); err != nil {
		return false, err
	}

	var expenseDate time.Time

	if *date != "" {
		parsed, err := registry.ParseDate(*date)
		if err != nil {
			return false, err
		}

		expenseDate = parsed
	}

	added, err := manager.AddExpense(*category, *description, *amount, expenseDate)
	if err != nil {
		return false, err
	}

	if !added {
		return false, fmt.Errorf("%w: %q", budget.ErrCategoryNotFound, *category)
	}

	_, _ = fmt.Fprintf(out, "Expense added to '%s'\n", *category)

	return true, nil
}

func removeExpense(manager *budget.Manager, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("remove-expense")
	category := fs.String("category", "", "category name")
	number := fs.Int("number", 0, "expense number as shown by list")

	if err := parse(fs, args, "category", "number"); err != nil {
		return false, err
	}

	if !manager.HasCategory(*category) {
		return false, fmt.Errorf("%w: %q", budget.ErrCategoryNotFound, *category)
	}

	if !manager.RemoveExpense(*category, *number) {
		return false, fmt.Errorf("%w: number %d in %q", errExpenseNotFound, *number, *category)
	}

	_, _ = fmt.Fprintf(out, "Expense %d removed from '%s'\n", *number, *category)

	return true, nil
}

func listExpenses(manager *budget.Manager, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("list")
	category := fs.String("category", "", "category name")

	if err := parse(fs, args, "category"); err != nil {
		return false, err
	}

	listing, err := manager.DescribeCategory(*category)
	if err != nil {
		return false, err
	}

	_, _ = fmt.Fprintln(out, listing)

	return false, nil
}

func listCategories(manager *budget.Manager, args []string, out io.Writer) (bool, error) {
	if err := parse(newFlagSet("categories"), args); err != nil {
		return false, err
	}

	names := manager.CategoryNames()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, "No categories yet")
		return false, nil
	}

	for _, name := range names {
		_, _ = fmt.Fprintln(out, name)
	}

	return false, nil
}

func report(manager *budget.Manager, args []string, out io.Writer) (bool, error) {
	if err := parse(newFlagSet("report"), args); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintln(out, manager)

	return false, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}

	return cli.RequireFlags(fs, required...)
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: budgettracker <command> [flags]")
	_, _ = fmt.Fprintln(w, "commands: add-category, remove-category, add-expense, remove-expense, categories, list, report")
}
