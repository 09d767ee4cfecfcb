// Package main provides the budgettracker command: it manages expense categories and their expenses
// kept in a JSON document (a file or a PostgreSQL row, see cli.Config).
//
// Usage:
//
//	budgettracker add-category -name Food
//	budgettracker add-expense -category Food -description "Weekly shopping" -amount 54.2 -date 2026-01-31
//	budgettracker categories
//	budgettracker list -category Food
//	budgettracker remove-expense -category Food -number 1
//	budgettracker remove-category -name Food
//	budgettracker report
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AntonStoeckl/library-budget-registry/cmd/internal/cli"
)

const defaultDocument = "budget.json"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "budgettracker:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errMissingCommand
	}

	env, err := cli.Setup(ctx, defaultDocument, stderr)
	if err != nil {
		return err
	}
	defer env.Close()

	return execute(ctx, env, args[0], args[1:], stdout)
}
