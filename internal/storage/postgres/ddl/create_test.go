package ddl

import (
	"context"
	"testing"

	gddl "datafaker/internal/ddl"
)

func TestBuildCreateTableSQL_FromSpec(t *testing.T) {
	t.Parallel()

	spec := gddl.TableSpec{
		Table: "public.images_analytical",
		Fields: []gddl.Field{
			{Name: "image_id", Kind: gddl.KindUInt32},
			{Name: "keyword_ids", Kind: gddl.KindUInt32List},
			{Name: "affect_id", Kind: gddl.KindUInt16, Nullable: true},
		},
		Engine:     "ReplacingMergeTree(updated_at)",
		PrimaryKey: []string{"image_id"},
	}

	got, err := BuildCreateTableSQL(FromSpec(spec))
	if err != nil {
		t.Fatalf("BuildCreateTableSQL error: %v", err)
	}
	want := "CREATE TABLE IF NOT EXISTS \"public\".\"images_analytical\" (\n" +
		"  \"image_id\" BIGINT NOT NULL,\n" +
		"  \"keyword_ids\" BIGINT[] NOT NULL,\n" +
		"  \"affect_id\" INTEGER,\n" +
		"  PRIMARY KEY (\"image_id\")\n" +
		");"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

type execRecorder struct{ sql []string }

func (e *execRecorder) CopyFrom(context.Context, []string, [][]any) (int64, error) { return 0, nil }
func (e *execRecorder) Count(context.Context) (int64, error)                      { return 0, nil }
func (e *execRecorder) Close()                                                    {}
func (e *execRecorder) Exec(_ context.Context, s string) error {
	e.sql = append(e.sql, s)
	return nil
}

func TestEnsureTable_ExecsOnce(t *testing.T) {
	t.Parallel()

	rec := &execRecorder{}
	def := gddl.TableDef{FQN: "t", Columns: []gddl.ColumnDef{{Name: "a", SQLType: "BIGINT"}}}
	if err := EnsureTable(context.Background(), rec, def); err != nil {
		t.Fatalf("EnsureTable error: %v", err)
	}
	if len(rec.sql) != 1 {
		t.Fatalf("exec calls = %d, want 1", len(rec.sql))
	}

	if err := EnsureTable(context.Background(), rec, gddl.TableDef{}); err == nil {
		t.Fatalf("EnsureTable with empty def: want error")
	}
}
