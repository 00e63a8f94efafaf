// Package ddl is a small, backend-agnostic model for CREATE TABLE statements.
//
// A TableSpec lists logical fields. Each backend resolves it into a TableDef
// with its own type mapping and renders it with its own Dialect.
package ddl

import (
	"fmt"
	"strings"
)

// Dialect controls identifier quoting and the statement prefix.
type Dialect struct {
	// Name prefixes error messages, e.g. "sqlite ddl".
	Name string
	// Quote quotes one identifier segment. Nil emits names verbatim.
	Quote func(string) string
	// IfNotExists renders CREATE TABLE IF NOT EXISTS.
	IfNotExists bool
}

var generic = Dialect{Name: "ddl"}

// BuildCreateTableSQL renders a plain CREATE TABLE with unquoted identifiers.
func BuildCreateTableSQL(t TableDef) (string, error) {
	return Render(t, generic)
}

// Render builds:
//
//	CREATE TABLE [IF NOT EXISTS] <fqn> (
//	  <col> <type> [NOT NULL] [DEFAULT <expr>],
//	  ...,
//	  [PRIMARY KEY (<pk-cols>)]
//	)[ <trailer>];
//
// Names, types and defaults are trimmed. Defaults are raw SQL.
func Render(t TableDef, d Dialect) (string, error) {
	fqn := strings.TrimSpace(t.FQN)
	if fqn == "" {
		return "", fmt.Errorf("%s: table FQN must not be empty", d.Name)
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("%s: at least one column is required", d.Name)
	}

	cols := make([]string, 0, len(t.Columns)+1)
	pks := make([]string, 0, len(t.Columns))

	for _, c := range t.Columns {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return "", fmt.Errorf("%s: column with empty name in table %s", d.Name, fqn)
		}
		typ := strings.TrimSpace(c.SQLType)
		if typ == "" {
			return "", fmt.Errorf("%s: column %s missing SQLType", d.Name, name)
		}

		var sb strings.Builder
		sb.WriteString(d.quote(name))
		sb.WriteByte(' ')
		sb.WriteString(typ)
		if !c.Nullable || c.PrimaryKey {
			sb.WriteString(" NOT NULL")
		}
		if def := strings.TrimSpace(c.Default); def != "" {
			sb.WriteString(" DEFAULT ")
			sb.WriteString(def)
		}
		cols = append(cols, sb.String())

		if c.PrimaryKey {
			pks = append(pks, d.quote(name))
		}
	}
	if len(pks) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}

	prefix := "CREATE TABLE "
	if d.IfNotExists {
		prefix = "CREATE TABLE IF NOT EXISTS "
	}
	stmt := prefix + d.QuoteFQN(fqn) + " (\n  " + strings.Join(cols, ",\n  ") + "\n)"
	if tr := strings.TrimSpace(t.Trailer); tr != "" {
		stmt += "\n" + tr
	}
	return stmt + ";", nil
}

func (d Dialect) quote(id string) string {
	if d.Quote == nil {
		return id
	}
	return d.Quote(id)
}

// QuoteFQN quotes each dotted segment of a possibly schema-qualified name.
func (d Dialect) QuoteFQN(fqn string) string {
	if d.Quote == nil {
		return fqn
	}
	parts := strings.Split(fqn, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, d.Quote(p))
	}
	return strings.Join(out, ".")
}

// DoubleQuote is the ANSI identifier quote used by Postgres and SQLite.
func DoubleQuote(id string) string { return `"` + strings.ReplaceAll(id, `"`, `""`) + `"` }

// Backtick is the MySQL and ClickHouse identifier quote.
func Backtick(id string) string { return "`" + strings.ReplaceAll(id, "`", "``") + "`" }

// Bracket is the SQL Server identifier quote.
func Bracket(id string) string { return "[" + strings.ReplaceAll(id, "]", "]]") + "]" }
