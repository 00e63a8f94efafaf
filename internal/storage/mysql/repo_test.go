package mysql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// TestBuildInsert verifies the multi-row statement shape and the flattened
// argument order.
func TestBuildInsert(t *testing.T) {
	t.Parallel()

	rows := [][]any{{1, "a"}, {2, "b"}, {3, "c"}}
	stmt, args, err := buildInsert("fake.images", []string{"image_id", "caption"}, rows)
	if err != nil {
		t.Fatalf("buildInsert error: %v", err)
	}
	want := "INSERT INTO `fake`.`images` (`image_id`, `caption`) VALUES (?, ?), (?, ?), (?, ?)"
	if stmt != want {
		t.Fatalf("stmt = %q; want %q", stmt, want)
	}
	if len(args) != 6 || args[0] != 1 || args[5] != "c" {
		t.Fatalf("args = %v", args)
	}

	if _, _, err := buildInsert("t", []string{"a", "b"}, [][]any{{1}}); err == nil {
		t.Fatalf("short row: want error")
	}
}

func TestChunkRows(t *testing.T) {
	t.Parallel()

	cases := map[int]int{1: 65535, 82: 799, 70000: 1}
	for cols, want := range cases {
		if got := chunkRows(cols); got != want {
			t.Fatalf("chunkRows(%d) = %d; want %d", cols, got, want)
		}
	}
}

func TestCopyFrom_ShortCircuits(t *testing.T) {
	t.Parallel()

	r := &Repository{cfg: Config{Table: "images"}}
	if n, err := r.CopyFrom(context.Background(), []string{"a"}, nil); n != 0 || err != nil {
		t.Fatalf("CopyFrom(nil) = %d, %v", n, err)
	}
	if _, err := r.CopyFrom(context.Background(), nil, [][]any{{1}}); err == nil {
		t.Fatalf("CopyFrom without columns: want error")
	}
}

func TestNewRepository_BadDSN(t *testing.T) {
	t.Parallel()

	if _, _, err := NewRepository(context.Background(), Config{DSN: "not a dsn"}); err == nil {
		t.Fatalf("NewRepository with malformed DSN: want error")
	}
}

// TestCopyFromAndCount_Integration runs against a real server when
// TEST_MYSQL_DSN is set, e.g. "root:pw@tcp(127.0.0.1:3306)/test".
func TestCopyFromAndCount_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("skipping integration test: set TEST_MYSQL_DSN to run")
	}

	ctx := context.Background()
	repo, closeFn, err := NewRepository(ctx, Config{DSN: dsn, Table: "__datafaker_copy_test"})
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	defer closeFn()

	_ = repo.Exec(ctx, "DROP TABLE IF EXISTS `__datafaker_copy_test`")
	if err := repo.Exec(ctx, "CREATE TABLE `__datafaker_copy_test` (image_id INT UNSIGNED, keyword_ids JSON, face_x DECIMAL(6,3), upload_date DATE)"); err != nil {
		t.Fatalf("create table: %v", err)
	}

	day := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := [][]any{
		{uint32(1), []uint32{1, 2}, decimal.RequireFromString("-30.5"), day},
		{uint32(2), []uint32{}, decimal.Zero, day},
	}
	cols := []string{"image_id", "keyword_ids", "face_x", "upload_date"}
	n, err := repo.CopyFrom(ctx, cols, rows)
	if err != nil || n != 2 {
		t.Fatalf("CopyFrom = %d, %v; want 2", n, err)
	}
	count, err := repo.Count(ctx)
	if err != nil || count != 2 {
		t.Fatalf("Count = %d, %v; want 2", count, err)
	}
}
