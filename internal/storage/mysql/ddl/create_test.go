package ddl

import (
	"testing"

	gddl "datafaker/internal/ddl"
)

func TestBuildCreateTableSQL_FromSpec(t *testing.T) {
	t.Parallel()

	spec := gddl.TableSpec{
		Table: "faker.images_analytical",
		Fields: []gddl.Field{
			{Name: "image_id", Kind: gddl.KindUInt32},
			{Name: "detection_classes", Kind: gddl.KindUInt8List},
			{Name: "hsv_cluster", Kind: gddl.KindUInt16, Nullable: true},
		},
		PrimaryKey: []string{"image_id"},
	}
	got, err := BuildCreateTableSQL(FromSpec(spec))
	if err != nil {
		t.Fatalf("BuildCreateTableSQL error: %v", err)
	}
	want := "CREATE TABLE IF NOT EXISTS `faker`.`images_analytical` (\n" +
		"  `image_id` INT UNSIGNED NOT NULL,\n" +
		"  `detection_classes` JSON NOT NULL,\n" +
		"  `hsv_cluster` SMALLINT UNSIGNED,\n" +
		"  PRIMARY KEY (`image_id`)\n" +
		");"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMapType(t *testing.T) {
	t.Parallel()

	tests := map[gddl.Kind]string{
		gddl.KindUInt8:      "TINYINT UNSIGNED",
		gddl.KindUInt16:     "SMALLINT UNSIGNED",
		gddl.KindUInt32:     "INT UNSIGNED",
		gddl.KindFloat32:    "FLOAT",
		gddl.KindDecimal63:  "DECIMAL(6,3)",
		gddl.KindString:     "TEXT",
		gddl.KindLowCard:    "VARCHAR(64)",
		gddl.KindBool:       "BOOLEAN",
		gddl.KindDate:       "DATE",
		gddl.KindDateTime:   "DATETIME",
		gddl.KindUInt32List: "JSON",
		gddl.KindUInt8List:  "JSON",
	}
	for kind, want := range tests {
		if got := MapType(kind); got != want {
			t.Fatalf("MapType(%q) = %q, want %q", kind, got, want)
		}
	}
}
