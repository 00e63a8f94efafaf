// Package ddl renders ClickHouse CREATE TABLE statements, including the
// ENGINE, ORDER BY and SETTINGS clauses.
package ddl

import gddl "datafaker/internal/ddl"

// MapType maps a logical kind to its ClickHouse type. Nullability is applied
// by FromSpec.
func MapType(kind gddl.Kind) string {
	switch kind {
	case gddl.KindUInt8:
		return "UInt8"
	case gddl.KindUInt16:
		return "UInt16"
	case gddl.KindUInt32:
		return "UInt32"
	case gddl.KindFloat32:
		return "Float32"
	case gddl.KindDecimal63:
		return "Decimal(6, 3)"
	case gddl.KindLowCard:
		return "LowCardinality(String)"
	case gddl.KindBool:
		return "Bool"
	case gddl.KindDate:
		return "Date"
	case gddl.KindDateTime:
		return "DateTime"
	case gddl.KindUInt32List:
		return "Array(UInt32)"
	case gddl.KindUInt8List:
		return "Array(UInt8)"
	default:
		return "String"
	}
}
