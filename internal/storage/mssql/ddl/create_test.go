package ddl

import (
	"context"
	"errors"
	"strings"
	"testing"

	gddl "datafaker/internal/ddl"
)

// TestBuildCreateTableSQL_Guarded checks the OBJECT_ID guard and the
// bracket-quoted body.
func TestBuildCreateTableSQL_Guarded(t *testing.T) {
	t.Parallel()

	spec := gddl.TableSpec{
		Table: "dbo.images_analytical",
		Fields: []gddl.Field{
			{Name: "image_id", Kind: gddl.KindUInt32},
			{Name: "site_name", Kind: gddl.KindLowCard},
			{Name: "obj_cluster", Kind: gddl.KindUInt16, Nullable: true},
		},
		PrimaryKey: []string{"image_id"},
	}

	got, err := BuildCreateTableSQL(FromSpec(spec))
	if err != nil {
		t.Fatalf("BuildCreateTableSQL() error = %v", err)
	}
	want := "IF OBJECT_ID(N'[dbo].[images_analytical]', N'U') IS NULL\n" +
		"BEGIN\n" +
		"CREATE TABLE [dbo].[images_analytical] (\n" +
		"  [image_id] BIGINT NOT NULL,\n" +
		"  [site_name] NVARCHAR(64) NOT NULL,\n" +
		"  [obj_cluster] INT,\n" +
		"  PRIMARY KEY ([image_id])\n" +
		");\n" +
		"END;"
	if got != want {
		t.Fatalf("BuildCreateTableSQL() =\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildCreateTableSQLErrors(t *testing.T) {
	t.Parallel()

	for _, def := range []gddl.TableDef{
		{FQN: " ", Columns: []gddl.ColumnDef{{Name: "id", SQLType: "INT"}}},
		{FQN: "dbo.t"},
		{FQN: "dbo.t", Columns: []gddl.ColumnDef{{Name: "id"}}},
	} {
		if sql, err := BuildCreateTableSQL(def); err == nil || sql != "" {
			t.Fatalf("BuildCreateTableSQL(%+v) = %q, %v; want error", def, sql, err)
		}
	}
}

type fakeRepository struct {
	execCalls int
	lastSQL   string
	err       error
}

func (f *fakeRepository) CopyFrom(context.Context, []string, [][]any) (int64, error) { return 0, nil }
func (f *fakeRepository) Count(context.Context) (int64, error)                      { return 0, nil }
func (f *fakeRepository) Close()                                                    {}
func (f *fakeRepository) Exec(_ context.Context, sql string) error {
	f.execCalls++
	f.lastSQL = sql
	return f.err
}

// TestEnsureTablePropagatesErrors verifies that Exec errors surface and that
// an invalid definition never reaches Exec.
func TestEnsureTablePropagatesErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	def := gddl.TableDef{FQN: "dbo.t", Columns: []gddl.ColumnDef{{Name: "id", SQLType: "INT"}}}

	repo := &fakeRepository{err: errors.New("boom")}
	if err := EnsureTable(ctx, repo, def); err == nil || err.Error() != "boom" {
		t.Fatalf("EnsureTable() error = %v, want boom", err)
	}
	if !strings.HasPrefix(repo.lastSQL, "IF OBJECT_ID") {
		t.Fatalf("Exec SQL = %q, want OBJECT_ID guard", repo.lastSQL)
	}

	repo = &fakeRepository{}
	if err := EnsureTable(ctx, repo, gddl.TableDef{}); err == nil {
		t.Fatalf("EnsureTable() with empty def: want error")
	}
	if repo.execCalls != 0 {
		t.Fatalf("Exec called %d times, want 0", repo.execCalls)
	}
}
