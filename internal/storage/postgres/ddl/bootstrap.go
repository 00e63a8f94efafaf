package ddl

import (
	"context"

	gddl "datafaker/internal/ddl"
	"datafaker/internal/storage"
)

// EnsureTable creates the target Postgres table if it does not exist.
func EnsureTable(ctx context.Context, repo storage.Repository, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
