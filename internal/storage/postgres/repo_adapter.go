// Package postgres registers the "postgres" storage kind. Callers obtain a
// Repository through storage.New and apply DDL through storage.EnsureTable
// without importing this package directly.
package postgres

import (
	"context"
	"fmt"

	"datafaker/internal/ddl"
	"datafaker/internal/storage"
	pgddl "datafaker/internal/storage/postgres/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
// Tests may replace this variable to avoid real DB connections.
var newRepository = NewRepository

// wrappedRepo adds Close to *Repository using the cleanup func returned by
// NewRepository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

var _ storage.Repository = (*wrappedRepo)(nil)

// Close implements storage.Repository.Close.
func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

func init() {
	storage.Register("postgres", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{
			DSN:     cfg.DSN,
			Table:   cfg.Table,
			Columns: cfg.Columns,
		})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("postgres",
		func(ctx context.Context, repo storage.Repository, spec ddl.TableSpec) error {
			if err := pgddl.EnsureTable(ctx, repo, pgddl.FromSpec(spec)); err != nil {
				return fmt.Errorf("apply DDL: %w", err)
			}
			return nil
		})
}
