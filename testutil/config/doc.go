// Package config provides PostgreSQL connection helpers for the integration tests.
//
// The DSN is read from REGISTRY_TEST_POSTGRES_DSN and defaults to a local test database on port 5432.
// The factory functions create connections for each supported driver (pgxpool.Pool, sql.DB, sqlx.DB).
package config
