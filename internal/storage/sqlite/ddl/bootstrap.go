package ddl

import (
	"context"

	gddl "datafaker/internal/ddl"
	"datafaker/internal/storage"
)

// EnsureTable builds a CREATE TABLE IF NOT EXISTS statement for def and
// executes it via the repository.
func EnsureTable(ctx context.Context, repo storage.Repository, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
