package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"datafaker/internal/checkpoint"
	"datafaker/internal/row"
	"datafaker/internal/storage"
	_ "datafaker/internal/storage/sqlite"
)

// TestRun_SQLiteEndToEnd loads real rows into an in-memory SQLite table
// and checks the stored count against the checkpoint.
func TestRun_SQLiteEndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, err := storage.New(ctx, storage.Config{
		Kind:    "sqlite",
		DSN:     ":memory:",
		Table:   row.Table,
		Columns: row.Columns(),
		Fields:  row.Schema(),
	})
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	defer repo.Close()

	if err := storage.EnsureTable(ctx, "sqlite", repo, row.TableSpec("")); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}

	store := checkpoint.NewFileStore(filepath.Join(t.TempDir(), "progress.json"))
	rec, err := New(repo, store, nil, Options{Workers: 2}).Run(ctx, checkpoint.NewInitial("e2e", 25, 10, false, epoch))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 25 || rec.RowsInserted != 25 {
		t.Fatalf("stored %d rows, checkpoint says %d; want 25", n, rec.RowsInserted)
	}

	saved, ok, err := store.Load(ctx)
	if err != nil || !ok || saved.LastImageID != 25 || saved.BatchesCompleted != 3 {
		t.Fatalf("saved = %+v, %v, %v", saved, ok, err)
	}
}
