package ddl

import (
	"context"

	gddl "datafaker/internal/ddl"
	"datafaker/internal/storage"
)

var dialect = gddl.Dialect{Name: "mysql ddl", Quote: gddl.Backtick, IfNotExists: true}

// FromSpec resolves spec with MapType.
func FromSpec(spec gddl.TableSpec) gddl.TableDef {
	return gddl.Resolve(spec, MapType)
}

// BuildCreateTableSQL renders CREATE TABLE IF NOT EXISTS with backtick
// identifiers.
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	return gddl.Render(t, dialect)
}

// EnsureTable creates the table if it does not exist.
func EnsureTable(ctx context.Context, repo storage.Repository, def gddl.TableDef) error {
	sql, err := BuildCreateTableSQL(def)
	if err != nil {
		return err
	}
	return repo.Exec(ctx, sql)
}
