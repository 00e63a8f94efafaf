package clickhouse

import (
	"context"

	"datafaker/internal/ddl"
	"datafaker/internal/storage"
	chddl "datafaker/internal/storage/clickhouse/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
var newRepository = NewRepository

var _ storage.Repository = (*wrappedRepo)(nil)

func init() {
	storage.Register("clickhouse", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{
			DSN:                cfg.DSN,
			Table:              cfg.Table,
			Columns:            cfg.Columns,
			AsyncInsert:        cfg.AsyncInsert,
			WaitForAsyncInsert: cfg.WaitForAsyncInsert,
		})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("clickhouse",
		func(ctx context.Context, repo storage.Repository, spec ddl.TableSpec) error {
			return chddl.EnsureTable(ctx, repo, chddl.FromSpec(spec))
		})
}

type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() { w.closeFn() }
