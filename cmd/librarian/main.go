// Package main provides the librarian command: it manages the books, members, and loans of a small library
// kept in a JSON document (a file or a PostgreSQL row, see cli.Config).
//
// Usage:
//
//	librarian add-physical -title "Clean Code" -author "Robert C. Martin" -copies 2
//	librarian add-ebook -id E1 -title "Go in Action" -author "William Kennedy" -size 4.2
//	librarian add-member -id M1 -name "Alice"
//	librarian borrow -member M1 -book E1
//	librarian return -member M1 -book E1
//	librarian books | members | loans
//	librarian borrowed -member M1
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AntonStoeckl/library-budget-registry/cmd/internal/cli"
)

const defaultDocument = "library.json"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "librarian:", err)
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
