package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-budget-registry/registry"
	"github.com/AntonStoeckl/library-budget-registry/registry/postgresengine/internal/adapters"
)

const (
	defaultTableName = "registry_documents"
	dialectPostgres  = "postgres"
	colKey           = "key"
	colDocument      = "document"
	colSavedAt       = "saved_at"
	castJsonb        = "?::jsonb"
	exprNow          = "NOW()"
	exprExcludedDoc  = "EXCLUDED.document"
)

// DocumentStore is a registry.DocumentStore keeping one JSON document per key in a PostgreSQL table.
type DocumentStore struct {
	db        adapters.DBAdapter
	tableName string
	logger    registry.Logger
}

// NewDocumentStoreFromPGXPool creates a new DocumentStore using a pgx Pool with optional configuration.
func NewDocumentStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (DocumentStore, error) {
	if db == nil {
		return DocumentStore{}, registry.ErrNilDatabaseConnection
	}

	return newDocumentStore(adapters.NewPGXAdapter(db), options...)
}

// NewDocumentStoreFromSQLDB creates a new DocumentStore using a sql.DB with optional configuration.
func NewDocumentStoreFromSQLDB(db *sql.DB, options ...Option) (DocumentStore, error) {
	if db == nil {
		return DocumentStore{}, registry.ErrNilDatabaseConnection
	}

	return newDocumentStore(adapters.NewSQLAdapter(db), options...)
}

// NewDocumentStoreFromSQLX creates a new DocumentStore using a sqlx.DB with optional configuration.
func NewDocumentStoreFromSQLX(db *sqlx.DB, options ...Option) (DocumentStore, error) {
	if db == nil {
		return DocumentStore{}, registry.ErrNilDatabaseConnection
	}

	return newDocumentStore(adapters.NewSQLXAdapter(db), options...)
}

func newDocumentStore(db adapters.DBAdapter, options ...Option) (DocumentStore, error) {
	ds := DocumentStore{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&ds); err != nil {
			return DocumentStore{}, err
		}
	}

	return ds, nil
}

// TableName returns the name of the table holding the documents.
func (ds DocumentStore) TableName() string {
	return ds.tableName
}

// CreateTable creates the documents table if it does not exist yet.
func (ds DocumentStore) CreateTable(ctx context.Context) error {
	sqlQuery := ds.buildCreateTableStatement()

	if _, _, err := ds.execute(ctx, sqlQuery, logActionCreateTable); err != nil {
		return errors.Join(registry.ErrWritingDocumentFailed, err)
	}

	ds.logOperation(logActionCreateTable, logAttrTable, ds.tableName)

	return nil
}

// SaveDocument stores the JSON document under key, replacing any previous document.
func (ds DocumentStore) SaveDocument(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return registry.ErrEmptyDocumentKey
	}

	sqlQuery, buildErr := ds.buildUpsertQuery(key, data)
	if buildErr != nil {
		ds.logError(logMsgBuildQueryFailed, buildErr, logAttrDocumentKey, key)
		return errors.Join(registry.ErrWritingDocumentFailed, buildErr)
	}

	_, duration, execErr := ds.execute(ctx, sqlQuery, logActionSave)
	if execErr != nil {
		return errors.Join(registry.ErrWritingDocumentFailed, execErr)
	}

	ds.logOperation(
		logActionSave,
		logAttrDocumentKey, key,
		logAttrDocumentSize, len(data),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return nil
}

// LoadDocument returns the JSON document stored under key.
// If no document exists, the error matches registry.ErrDocumentNotFound.
func (ds DocumentStore) LoadDocument(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, registry.ErrEmptyDocumentKey
	}

	sqlQuery, buildErr := ds.buildSelectQuery(key)
	if buildErr != nil {
		ds.logError(logMsgBuildQueryFailed, buildErr, logAttrDocumentKey, key)
		return nil, errors.Join(registry.ErrReadingDocumentFailed, buildErr)
	}

	start := time.Now()
	rows, queryErr := ds.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	ds.logQueryWithDuration(sqlQuery, logActionLoad, duration)

	if queryErr != nil {
		ds.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return nil, errors.Join(registry.ErrReadingDocumentFailed, queryErr)
	}
	defer ds.closeRows(rows)

	data, scanErr := ds.scanDocument(rows)
	if scanErr != nil {
		return nil, scanErr
	}

	if data == nil {
		return nil, fmt.Errorf("%w: %q", registry.ErrDocumentNotFound, key)
	}

	ds.logOperation(
		logActionLoad,
		logAttrDocumentKey, key,
		logAttrDocumentSize, len(data),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return data, nil
}

// DeleteDocument removes the document stored under key.
// If no document exists, the error matches registry.ErrDocumentNotFound.
func (ds DocumentStore) DeleteDocument(ctx context.Context, key string) error {
	if key == "" {
		return registry.ErrEmptyDocumentKey
	}

	sqlQuery, buildErr := ds.buildDeleteQuery(key)
	if buildErr != nil {
		ds.logError(logMsgBuildQueryFailed, buildErr, logAttrDocumentKey, key)
		return errors.Join(registry.ErrDeletingDocumentFailed, buildErr)
	}

	rowsAffected, duration, execErr := ds.execute(ctx, sqlQuery, logActionDelete)
	if execErr != nil {
		return errors.Join(registry.ErrDeletingDocumentFailed, execErr)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %q", registry.ErrDocumentNotFound, key)
	}

	ds.logOperation(logActionDelete, logAttrDocumentKey, key, logAttrDurationMS, toMilliseconds(duration))

	return nil
}

// execute runs a statement and returns the number of affected rows with timing information.
func (ds DocumentStore) execute(ctx context.Context, sqlQuery string, action string) (int64, time.Duration, error) {
	start := time.Now()
	result, execErr := ds.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	ds.logQueryWithDuration(sqlQuery, action, duration)

	if execErr != nil {
		ds.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return 0, duration, execErr
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		ds.logError(logMsgDBExecFailed, rowsAffectedErr, logAttrQuery, sqlQuery)
		return 0, duration, rowsAffectedErr
	}

	return rowsAffected, duration, nil
}

// scanDocument reads the document column of the first row, it returns nil data if there is no row.
func (ds DocumentStore) scanDocument(rows adapters.DBRows) ([]byte, error) {
	var data []byte

	if rows.Next() {
		if scanErr := rows.Scan(&data); scanErr != nil {
			ds.logError(logMsgScanRowFailed, scanErr)
			return nil, errors.Join(registry.ErrReadingDocumentFailed, scanErr)
		}

		if data == nil {
			data = []byte{}
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		ds.logError(logMsgScanRowFailed, rowsErr)
		return nil, errors.Join(registry.ErrReadingDocumentFailed, rowsErr)
	}

	return data, nil
}

// closeRows safely closes database rows and logs any errors.
func (ds DocumentStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		ds.logWarning(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func (ds DocumentStore) buildCreateTableStatement() string {
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s text PRIMARY KEY, %s jsonb NOT NULL, %s timestamptz NOT NULL DEFAULT NOW())",
		pgx.Identifier{ds.tableName}.Sanitize(), colKey, colDocument, colSavedAt,
	)
}

func (ds DocumentStore) buildUpsertQuery(key string, data []byte) (string, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(ds.tableName).
		Rows(goqu.Record{
			colKey:      key,
			colDocument: goqu.L(castJsonb, string(data)),
			colSavedAt:  goqu.L(exprNow),
		}).
		OnConflict(goqu.DoUpdate(colKey, goqu.Record{
			colDocument: goqu.L(exprExcludedDoc),
			colSavedAt:  goqu.L(exprNow),
		}))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(registry.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (ds DocumentStore) buildSelectQuery(key string) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(ds.tableName).
		Select(goqu.L(colDocument + "::text")).
		Where(goqu.C(colKey).Eq(key))

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(registry.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (ds DocumentStore) buildDeleteQuery(key string) (string, error) {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(ds.tableName).
		Where(goqu.C(colKey).Eq(key))

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(registry.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}
