package ddl

import (
	"context"
	"sort"
	"strings"

	gddl "datafaker/internal/ddl"
	"datafaker/internal/storage"
)

const (
	defaultEngine  = "MergeTree"
	defaultOrderBy = "tuple()"
)

var dialect = gddl.Dialect{Name: "clickhouse ddl", Quote: gddl.Backtick, IfNotExists: true}

// FromSpec resolves spec into a ClickHouse table. Nullable fields become
// Nullable(T); nullability lives in the type, so no column carries a NOT
// NULL clause. The sort key comes from OrderBy rather than PRIMARY KEY.
func FromSpec(spec gddl.TableSpec) gddl.TableDef {
	cols := make([]gddl.ColumnDef, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		typ := MapType(f.Kind)
		if f.Nullable {
			typ = "Nullable(" + typ + ")"
		}
		cols = append(cols, gddl.ColumnDef{Name: f.Name, SQLType: typ, Nullable: true})
	}
	return gddl.TableDef{FQN: spec.Table, Columns: cols, Trailer: trailer(spec)}
}

// trailer renders ENGINE, ORDER BY and SETTINGS. Settings are sorted by key
// so the statement is stable.
func trailer(spec gddl.TableSpec) string {
	engine := strings.TrimSpace(spec.Engine)
	if engine == "" {
		engine = defaultEngine
	}
	orderBy := defaultOrderBy
	if len(spec.OrderBy) > 0 {
		q := make([]string, len(spec.OrderBy))
		for i, c := range spec.OrderBy {
			q[i] = dialect.QuoteFQN(c)
		}
		orderBy = "(" + strings.Join(q, ", ") + ")"
	}

	var sb strings.Builder
	sb.WriteString("ENGINE = " + engine)
	sb.WriteString("\nORDER BY " + orderBy)
	if len(spec.Settings) > 0 {
		keys := make([]string, 0, len(spec.Settings))
		for k := range spec.Settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + " = " + spec.Settings[k]
		}
		sb.WriteString("\nSETTINGS " + strings.Join(parts, ", "))
	}
	return sb.String()
}

// BuildCreateTableSQL renders CREATE TABLE IF NOT EXISTS with the engine
// trailer.
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
