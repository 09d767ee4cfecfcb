// Package adapters provide database adapter implementations for the PostgreSQL document store.
//
// The adapters support three PostgreSQL database libraries: pgxpool.Pool, sql.DB, and sqlx.DB.
// All of them present the same DBAdapter interface, so the document store works with
// any supported connection type.
package adapters
