package ddl

import gddl "datafaker/internal/ddl"

var dialect = gddl.Dialect{Name: "postgres ddl", Quote: gddl.DoubleQuote, IfNotExists: true}

// FromSpec resolves spec with MapType. Engine, OrderBy and Settings do not
// apply to Postgres and are dropped.
func FromSpec(spec gddl.TableSpec) gddl.TableDef {
	return gddl.Resolve(spec, MapType)
}

// BuildCreateTableSQL renders CREATE TABLE IF NOT EXISTS with double-quoted
// identifiers.
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	return gddl.Render(t, dialect)
}
