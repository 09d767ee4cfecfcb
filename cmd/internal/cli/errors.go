package cli

import (
	"errors"
)

var (
	// ErrUnknownStore is returned when REGISTRY_STORE names an unsupported store.
	ErrUnknownStore = errors.New("unknown document store")

	// ErrUnknownDBAdapter is returned when REGISTRY_DB_ADAPTER names an unsupported database adapter.
	ErrUnknownDBAdapter = errors.New("unknown database adapter")

	// ErrMissingPostgresDSN is returned when the postgres store is selected without a DSN.
	ErrMissingPostgresDSN = errors.New("postgres store requires REGISTRY_POSTGRES_DSN")

	// ErrUnknownLogFormat is returned when REGISTRY_LOG_FORMAT names an unsupported format.
	ErrUnknownLogFormat = errors.New("unknown log format")

	// ErrUnknownCommand is returned for an unsupported sub-command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingFlag is returned when a required sub-command flag is not set.
	ErrMissingFlag = errors.New("missing required flag")
)
