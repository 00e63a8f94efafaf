package ddl

import (
	"testing"

	gddl "datafaker/internal/ddl"
)

// TestMapType verifies that each logical kind maps to the expected SQLite
// affinity and that unknown kinds fall back to TEXT.
func TestMapType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind gddl.Kind
		want string
	}{
		{gddl.KindUInt8, "INTEGER"},
		{gddl.KindUInt16, "INTEGER"},
		{gddl.KindUInt32, "INTEGER"},
		{gddl.KindBool, "INTEGER"},
		{gddl.KindFloat32, "REAL"},
		{gddl.KindDecimal63, "NUMERIC"},
		{gddl.KindDate, "TEXT"},
		{gddl.KindDateTime, "TEXT"},
		{gddl.KindLowCard, "TEXT"},
		{gddl.KindUInt32List, "TEXT"},
		{gddl.KindUInt8List, "TEXT"},
		{gddl.Kind("blob"), "TEXT"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			if got := MapType(tt.kind); got != tt.want {
				t.Fatalf("MapType(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}
