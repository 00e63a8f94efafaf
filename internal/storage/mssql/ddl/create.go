// Package ddl renders SQL Server CREATE TABLE scripts from the generic ddl
// model.
//
// T-SQL has no CREATE TABLE IF NOT EXISTS, so the statement is wrapped in an
// IF OBJECT_ID(...) IS NULL guard.
package ddl

import (
	"fmt"
	"strings"

	gddl "datafaker/internal/ddl"
)

var dialect = gddl.Dialect{Name: "mssql ddl", Quote: gddl.Bracket}

// FromSpec resolves spec with MapType.
func FromSpec(spec gddl.TableSpec) gddl.TableDef {
	return gddl.Resolve(spec, MapType)
}

// BuildCreateTableSQL returns a T-SQL script of the form:
//
//	IF OBJECT_ID(N'[schema].[table]', N'U') IS NULL
//	BEGIN
//	CREATE TABLE [schema].[table] (
//	  [col1] TYPE [NOT NULL],
//	  PRIMARY KEY ([pk1])
//	);
//	END;
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	create, err := gddl.Render(t, dialect)
	if err != nil {
		return "", err
	}
	fqn := dialect.QuoteFQN(strings.TrimSpace(t.FQN))
	return fmt.Sprintf(
		"IF OBJECT_ID(N'%s', N'U') IS NULL\nBEGIN\n%s\nEND;",
		strings.ReplaceAll(fqn, "'", "''"), create,
	), nil
}
