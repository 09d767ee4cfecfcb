package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-budget-registry/cmd/internal/cli"
	"github.com/AntonStoeckl/library-budget-registry/library"
)

var errMissingCommand = errors.New("missing command")

// command applies one sub-command to the library and reports whether it changed the library.
type command func(lib *library.Library, args []string, out io.Writer) (bool, error)

var commands = map[string]command{
	"add-physical": addPhysicalBook,
	"add-ebook":    addEBook,
	"add-member":   addMember,
	"borrow":       borrowBook,
	"return":       returnBook,
	"books":        listBooks,
	"members":      listMembers,
	"borrowed":     listBorrowedBooks,
	"loans":        listLoans,
}

func execute(ctx context.Context, env *cli.Env, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", cli.ErrUnknownCommand, name)
	}

	lib, err := library.New(library.WithLogger(env.Logger))
	if err != nil {
		return err
	}

	if loadErr := lib.LoadFrom(ctx, env.Store, env.Config.Document); loadErr != nil && !cli.IsMissingDocument(loadErr) {
		return loadErr
	}

	mutated, err := cmd(lib, args, out)
	if err != nil {
		return err
	}

	if !mutated {
		return nil
	}

	return lib.SaveTo(ctx, env.Store, env.Config.Document)
}

func addPhysicalBook(lib *library.Library, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("add-physical")
	id := fs.String("id", "", "book id, generated when empty")
	title := fs.String("title", "", "book title")
	author := fs.String("author", "", "book author")
	copies := fs.Int("copies", 1, "number of available copies")

	if err := parse(fs, args, "title", "author"); err != nil {
		return false, err
	}

	bookID, err := idOrGenerated(*id)
	if err != nil {
		return false, err
	}

	book, err := library.NewPhysicalBook(bookID, *title, *author, *copies)
	if err != nil {
		return false, err
	}

	if err = lib.AddBook(book); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintln(out, "Added:", book)

	return true, nil
}

func addEBook(lib *library.Library, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("add-ebook")
	id := fs.String("id", "", "book id, generated when empty")
	title := fs.String("title", "", "book title")
	author := fs.String("author", "", "book author")
	size := fs.Float64("size", 0, "file size in MB")

	if err := parse(fs, args, "title", "author", "size"); err != nil {
		return false, err
	}

	bookID, err := idOrGenerated(*id)
	if err != nil {
		return false, err
	}

	book, err := library.NewEBook(bookID, *title, *author, *size)
	if err != nil {
		return false, err
	}

	if err = lib.AddBook(book); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintln(out, "Added:", book)

	return true, nil
}

func addMember(lib *library.Library, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("add-member")
	id := fs.String("id", "", "member id, generated when empty")
	name := fs.String("name", "", "member name")

	if err := parse(fs, args, "name"); err != nil {
		return false, err
	}

	memberID, err := idOrGenerated(*id)
	if err != nil {
		return false, err
	}

	member, err := library.NewMember(memberID, *name)
	if err != nil {
		return false, err
	}

	if err = lib.AddMember(member); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintln(out, "Added:", member)

	return true, nil
}

func borrowBook(lib *library.Library, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("borrow")
	memberID := fs.String("member", "", "member id")
	bookID := fs.String("book", "", "book id")

	if err := parse(fs, args, "member", "book"); err != nil {
		return false, err
	}

	loan, err := lib.BorrowBook(*memberID, *bookID)
	if err != nil {
		return false, err
	}

	_, _ = fmt.Fprintln(out, loan)

	return true, nil
}

func returnBook(lib *library.Library, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("return")
	memberID := fs.String("member", "", "member id")
	bookID := fs.String("book", "", "book id")

	if err := parse(fs, args, "member", "book"); err != nil {
		return false, err
	}

	if err := lib.ReturnBook(*memberID, *bookID); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintf(out, "Returned: %s from %s\n", *bookID, *memberID)

	return true, nil
}

func listBooks(lib *library.Library, args []string, out io.Writer) (bool, error) {
	if err := parse(newFlagSet("books"), args); err != nil {
		return false, err
	}

	for _, book := range lib.Books() {
		_, _ = fmt.Fprintln(out, book)
	}

	return false, nil
}

func listMembers(lib *library.Library, args []string, out io.Writer) (bool, error) {
	if err := parse(newFlagSet("members"), args); err != nil {
		return false, err
	}

	for _, member := range lib.Members() {
		_, _ = fmt.Fprintln(out, member)
	}

	return false, nil
}

func listBorrowedBooks(lib *library.Library, args []string, out io.Writer) (bool, error) {
	fs := newFlagSet("borrowed")
	memberID := fs.String("member", "", "member id")

	if err := parse(fs, args, "member"); err != nil {
		return false, err
	}

	books, err := lib.BorrowedBooks(*memberID)
	if err != nil {
		return false, err
	}

	for _, book := range books {
		_, _ = fmt.Fprintln(out, book)
	}

	return false, nil
}

func listLoans(lib *library.Library, args []string, out io.Writer) (bool, error) {
	if err := parse(newFlagSet("loans"), args); err != nil {
		return false, err
	}

	for _, loan := range lib.Loans() {
		_, _ = fmt.Fprintln(out, loan)
	}

	_, _ = fmt.Fprintln(out, lib)

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

func idOrGenerated(id string) (string, error) {
	if id != "" {
		return id, nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return generated.String(), nil
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: librarian <command> [flags]")
	_, _ = fmt.Fprintln(w, "commands: add-physical, add-ebook, add-member, borrow, return, books, members, borrowed, loans")
}
