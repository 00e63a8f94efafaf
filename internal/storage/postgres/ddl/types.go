// Package ddl renders Postgres CREATE TABLE statements from the generic
// ddl model.
package ddl

import gddl "datafaker/internal/ddl"

// MapType maps a logical kind to a Postgres type. Unsigned kinds widen to the
// next signed type so the full range fits.
//
//	uint8          -> SMALLINT
//	uint16         -> INTEGER
//	uint32         -> BIGINT
//	float32        -> REAL
//	decimal(6,3)   -> NUMERIC(6,3)
//	bool           -> BOOLEAN
//	date           -> DATE
//	datetime       -> TIMESTAMPTZ
//	array(uint32)  -> BIGINT[]
//	array(uint8)   -> SMALLINT[]
//	everything else -> TEXT
func MapType(kind gddl.Kind) string {
	switch kind {
	case gddl.KindUInt8:
		return "SMALLINT"
	case gddl.KindUInt16:
		return "INTEGER"
	case gddl.KindUInt32:
		return "BIGINT"
	case gddl.KindFloat32:
		return "REAL"
	case gddl.KindDecimal63:
		return "NUMERIC(6,3)"
	case gddl.KindBool:
		return "BOOLEAN"
	case gddl.KindDate:
		return "DATE"
	case gddl.KindDateTime:
		return "TIMESTAMPTZ"
	case gddl.KindUInt32List:
		return "BIGINT[]"
	case gddl.KindUInt8List:
		return "SMALLINT[]"
	default:
		return "TEXT"
	}
}
