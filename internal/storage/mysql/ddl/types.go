// Package ddl renders MySQL CREATE TABLE statements from the generic ddl
// model.
package ddl

import gddl "datafaker/internal/ddl"

// MapType maps a logical kind to a MySQL column type. Unsigned kinds keep
// their width; lists use the native JSON type.
func MapType(kind gddl.Kind) string {
	switch kind {
	case gddl.KindUInt8:
		return "TINYINT UNSIGNED"
	case gddl.KindUInt16:
		return "SMALLINT UNSIGNED"
	case gddl.KindUInt32:
		return "INT UNSIGNED"
	case gddl.KindFloat32:
		return "FLOAT"
	case gddl.KindDecimal63:
		return "DECIMAL(6,3)"
	case gddl.KindLowCard:
		return "VARCHAR(64)"
	case gddl.KindBool:
		return "BOOLEAN"
	case gddl.KindDate:
		return "DATE"
	case gddl.KindDateTime:
		return "DATETIME"
	case gddl.KindUInt32List, gddl.KindUInt8List:
		return "JSON"
	default:
		return "TEXT"
	}
}
