package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/AntonStoeckl/library-budget-registry/registry"
	"github.com/AntonStoeckl/library-budget-registry/registry/filestore"
	"github.com/AntonStoeckl/library-budget-registry/registry/postgresengine"
)

const postgresDriver = "postgres"

// OpenStore opens the document store selected by the configuration.
// The returned close function releases the database connection and must always be called.
func OpenStore(ctx context.Context, cfg Config, logger registry.Logger) (registry.DocumentStore, func(), error) {
	switch cfg.Store {
	case StoreFile:
		return filestore.New(filestore.WithLogger(logger)), func() {}, nil
	case StorePostgres:
		return openPostgresStore(ctx, cfg, logger)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}

func openPostgresStore(ctx context.Context, cfg Config, logger registry.Logger) (registry.DocumentStore, func(), error) {
	var (
		store   postgresengine.DocumentStore
		closeFn func()
		err     error
	)

	options := []postgresengine.Option{postgresengine.WithLogger(logger)}

	switch cfg.DBAdapter {
	case DBAdapterPGX:
		pool, poolErr := pgxpool.New(ctx, cfg.PostgresDSN)
		if poolErr != nil {
			return nil, nil, poolErr
		}

		closeFn = pool.Close
		store, err = postgresengine.NewDocumentStoreFromPGXPool(pool, options...)

	case DBAdapterSQL:
		db, openErr := sql.Open(postgresDriver, cfg.PostgresDSN)
		if openErr != nil {
			return nil, nil, openErr
		}

		closeFn = func() { _ = db.Close() }
		store, err = postgresengine.NewDocumentStoreFromSQLDB(db, options...)

	case DBAdapterSQLX:
		db, openErr := sqlx.Open(postgresDriver, cfg.PostgresDSN)
		if openErr != nil {
			return nil, nil, openErr
		}

		closeFn = func() { _ = db.Close() }
		store, err = postgresengine.NewDocumentStoreFromSQLX(db, options...)

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDBAdapter, cfg.DBAdapter)
	}

	if err != nil {
		closeFn()
		return nil, nil, err
	}

	if err = store.CreateTable(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}

	return store, closeFn, nil
}
