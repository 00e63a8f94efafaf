package clickhouse

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// fakeBatch records appended rows. Unused driver.Batch methods panic via the
// nil embedded interface.
type fakeBatch struct {
	driver.Batch
	rows      [][]any
	appendErr error
	sendErr   error
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.rows = append(b.rows, v)
	return nil
}

func (b *fakeBatch) Send() error {
	b.sent = true
	return b.sendErr
}

func (b *fakeBatch) Abort() error {
	b.aborted = true
	return nil
}

type fakeRow struct {
	driver.Row
	n   uint64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*uint64)) = r.n
	return nil
}

type fakeConn struct {
	batch    *fakeBatch
	query    string
	batchCtx context.Context
	execs    []string
	count    uint64
}

func (c *fakeConn) PrepareBatch(ctx context.Context, query string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	c.query = query
	c.batchCtx = ctx
	return c.batch, nil
}

func (c *fakeConn) QueryRow(_ context.Context, query string, _ ...any) driver.Row {
	c.query = query
	return fakeRow{n: c.count}
}

func (c *fakeConn) Exec(_ context.Context, query string, _ ...any) error {
	c.execs = append(c.execs, query)
	return nil
}

func (c *fakeConn) Close() error { return nil }

func TestCopyFrom_AppendsAndSends(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{batch: &fakeBatch{}}
	r := &Repository{conn: fc, cfg: Config{Table: "default.images_analytical"}}

	rows := [][]any{{uint32(1), "a"}, {uint32(2), "b"}}
	n, err := r.CopyFrom(context.Background(), []string{"image_id", "caption"}, rows)
	if err != nil {
		t.Fatalf("CopyFrom error: %v", err)
	}
	if n != 2 || len(fc.batch.rows) != 2 || !fc.batch.sent {
		t.Fatalf("n=%d rows=%d sent=%v; want 2, 2, true", n, len(fc.batch.rows), fc.batch.sent)
	}
	want := "INSERT INTO `default`.`images_analytical` (`image_id`, `caption`)"
	if fc.query != want {
		t.Fatalf("query = %q; want %q", fc.query, want)
	}
}

// TestCopyFrom_AbortsOnAppendError verifies a bad row aborts the batch and
// nothing is sent.
func TestCopyFrom_AbortsOnAppendError(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{batch: &fakeBatch{appendErr: errors.New("type mismatch")}}
	r := &Repository{conn: fc, cfg: Config{Table: "t"}}

	_, err := r.CopyFrom(context.Background(), []string{"a"}, [][]any{{1}})
	if err == nil || !strings.Contains(err.Error(), "append row 0") {
		t.Fatalf("CopyFrom error = %v; want append row 0", err)
	}
	if !fc.batch.aborted || fc.batch.sent {
		t.Fatalf("aborted=%v sent=%v; want true, false", fc.batch.aborted, fc.batch.sent)
	}

	fc = &fakeConn{batch: &fakeBatch{}}
	r.conn = fc
	if _, err := r.CopyFrom(context.Background(), []string{"a", "b"}, [][]any{{1}}); err == nil {
		t.Fatalf("short row: want error")
	}
	if !fc.batch.aborted {
		t.Fatalf("short row did not abort the batch")
	}
}

func TestCopyFrom_SendError(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{batch: &fakeBatch{sendErr: errors.New("too many parts")}}
	r := &Repository{conn: fc, cfg: Config{Table: "t"}}
	n, err := r.CopyFrom(context.Background(), []string{"a"}, [][]any{{1}})
	if err == nil || n != 0 {
		t.Fatalf("CopyFrom = %d, %v; want 0 and error", n, err)
	}
}

// TestInsertContext only wraps the context when async insert is on.
func TestInsertContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sync := &Repository{cfg: Config{}}
	if sync.insertContext(ctx) != ctx {
		t.Fatalf("sync insert must reuse the caller context")
	}
	async := &Repository{cfg: Config{AsyncInsert: true, WaitForAsyncInsert: true}}
	if async.insertContext(ctx) == ctx {
		t.Fatalf("async insert must attach settings")
	}
}

func TestCountAndExec(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{count: 42}
	r := &Repository{conn: fc, cfg: Config{Table: "images"}}

	n, err := r.Count(context.Background())
	if err != nil || n != 42 {
		t.Fatalf("Count = %d, %v; want 42", n, err)
	}
	if fc.query != "SELECT count() FROM `images`" {
		t.Fatalf("count query = %q", fc.query)
	}

	if err := r.Exec(context.Background(), "  "); err != nil || len(fc.execs) != 0 {
		t.Fatalf("blank Exec should be a no-op")
	}
	if err := r.Exec(context.Background(), "SELECT 1"); err != nil || len(fc.execs) != 1 {
		t.Fatalf("Exec = %v, execs=%v", err, fc.execs)
	}
}
