package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AntonStoeckl/library-budget-registry/registry"
)

// Env is the runtime environment of one command invocation.
type Env struct {
	Config Config
	Logger *slog.Logger
	Store  registry.DocumentStore
	close  func()
}

// Setup loads the configuration, builds the logger writing to logOutput, and opens the document store.
func Setup(ctx context.Context, defaultDocument string, logOutput io.Writer) (*Env, error) {
	cfg, err := LoadConfig(defaultDocument)
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(cfg, logOutput)
	if err != nil {
		return nil, err
	}

	store, closeFn, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Env{Config: cfg, Logger: logger, Store: store, close: closeFn}, nil
}

// Close releases the document store.
func (e *Env) Close() {
	if e.close != nil {
		e.close()
	}
}

// IsMissingDocument reports whether err means there is no persisted document yet,
// which the commands treat as an empty registry.
func IsMissingDocument(err error) bool {
	return errors.Is(err, registry.ErrDocumentNotFound)
}

// RequireFlags returns ErrMissingFlag naming every flag of fs that was not set on the command line.
func RequireFlags(fs *flag.FlagSet, names ...string) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	missing := make([]string, 0)
	for _, name := range names {
		if !set[name] {
			missing = append(missing, "-"+name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", fs.Name(), ErrMissingFlag, strings.Join(missing, ", "))
	}

	return nil
}
