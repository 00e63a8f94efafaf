// Package ddl contains MSSQL-specific helpers for generating DDL.
//
// SQL Server has no unsigned integers, so each unsigned kind maps to the
// next wider signed type. Lists are stored as JSON in NVARCHAR(MAX).
package ddl

import gddl "datafaker/internal/ddl"

// MapType maps a logical kind into a SQL Server column type. Unknown kinds
// fall back to NVARCHAR(MAX).
func MapType(kind gddl.Kind) string {
	switch kind {
	case gddl.KindUInt8:
		return "TINYINT"
	case gddl.KindUInt16:
		return "INT"
	case gddl.KindUInt32:
		return "BIGINT"
	case gddl.KindFloat32:
		return "REAL"
	case gddl.KindDecimal63:
		return "DECIMAL(6,3)"
	case gddl.KindLowCard:
		return "NVARCHAR(64)"
	case gddl.KindBool:
		return "BIT"
	case gddl.KindDate:
		return "DATE"
	case gddl.KindDateTime:
		return "DATETIME2"
	default:
		return "NVARCHAR(MAX)"
	}
}
