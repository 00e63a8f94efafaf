package ddl

import (
	"testing"

	gddl "datafaker/internal/ddl"
)

func TestMapType(t *testing.T) {
	t.Parallel()

	tests := map[gddl.Kind]string{
		gddl.KindUInt8:      "TINYINT",
		gddl.KindUInt16:     "INT",
		gddl.KindUInt32:     "BIGINT",
		gddl.KindFloat32:    "REAL",
		gddl.KindDecimal63:  "DECIMAL(6,3)",
		gddl.KindString:     "NVARCHAR(MAX)",
		gddl.KindLowCard:    "NVARCHAR(64)",
		gddl.KindBool:       "BIT",
		gddl.KindDate:       "DATE",
		gddl.KindDateTime:   "DATETIME2",
		gddl.KindUInt32List: "NVARCHAR(MAX)",
		gddl.KindUInt8List:  "NVARCHAR(MAX)",
	}
	for kind, want := range tests {
		if got := MapType(kind); got != want {
			t.Fatalf("MapType(%q) = %q, want %q", kind, got, want)
		}
	}
}
