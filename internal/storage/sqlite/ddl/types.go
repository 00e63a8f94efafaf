// Package ddl renders SQLite CREATE TABLE statements from the generic ddl
// model.
package ddl

import gddl "datafaker/internal/ddl"

// MapType maps a logical kind to a SQLite column affinity. Booleans are
// INTEGER 0/1, dates are ISO-8601 TEXT and lists are JSON TEXT.
func MapType(kind gddl.Kind) string {
	switch kind {
	case gddl.KindUInt8, gddl.KindUInt16, gddl.KindUInt32, gddl.KindBool:
		return "INTEGER"
	case gddl.KindFloat32:
		return "REAL"
	case gddl.KindDecimal63:
		return "NUMERIC"
	default:
		return "TEXT"
	}
}
