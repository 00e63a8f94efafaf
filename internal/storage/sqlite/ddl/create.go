package ddl

import gddl "datafaker/internal/ddl"

var dialect = gddl.Dialect{Name: "sqlite ddl", Quote: gddl.DoubleQuote, IfNotExists: true}

// FromSpec resolves spec with MapType. Engine, ORDER BY and SETTINGS have no
// SQLite equivalent and are ignored.
func FromSpec(spec gddl.TableSpec) gddl.TableDef {
	return gddl.Resolve(spec, MapType)
}

// BuildCreateTableSQL returns:
//
//	CREATE TABLE IF NOT EXISTS "table" (
//	  "col1" TYPE [NOT NULL],
//	  PRIMARY KEY ("pk1")
//	);
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	return gddl.Render(t, dialect)
}
