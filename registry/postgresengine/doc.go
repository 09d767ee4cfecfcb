// Package postgresengine provides a PostgreSQL implementation of registry.DocumentStore.
//
// Every document is one row of a table with the columns key (primary key), document (jsonb),
// and saved_at. Saving upserts the row, so a key always holds the latest document.
//
// The store supports three PostgreSQL adapters: pgxpool.Pool, sql.DB, and sqlx.DB.
// All SQL statements are built with goqu for the postgres dialect.
//
// Usage:
//
//	store, err := postgresengine.NewDocumentStoreFromPGXPool(pool, postgresengine.WithLogger(slog.Default()))
//	err = store.CreateTable(ctx)
//	err = lib.SaveTo(ctx, store, "library")
package postgresengine
