// Package clickhouse implements a ClickHouse-backed storage.Repository using
// the native protocol of clickhouse-go. A batch is one PrepareBatch/Send
// round trip, optionally as an async insert.
package clickhouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"datafaker/internal/ddl"
)

// Config holds ClickHouse repository configuration.
type Config struct {
	DSN     string
	Table   string
	Columns []string

	// AsyncInsert sets async_insert=1 on every insert.
	AsyncInsert bool
	// WaitForAsyncInsert makes the server acknowledge only after the async
	// buffer is flushed. Ignored unless AsyncInsert is set.
	WaitForAsyncInsert bool
}

// conn is the subset of driver.Conn the repository uses.
type conn interface {
	PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
	QueryRow(ctx context.Context, query string, args ...any) driver.Row
	Exec(ctx context.Context, query string, args ...any) error
	Close() error
}

// Repository is a ClickHouse-backed implementation of storage.Repository.
type Repository struct {
	conn conn
	cfg  Config
}

var dialect = ddl.Dialect{Quote: ddl.Backtick}

// NewRepository parses the DSN, opens a native connection and pings it.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	opts, err := clickhouse.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("clickhouse dsn: %w", err)
	}
	c, err := clickhouse.Open(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("clickhouse open: %w", err)
	}
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("clickhouse ping: %w", err)
	}
	close := func() { _ = c.Close() }
	return &Repository{conn: c, cfg: cfg}, close, nil
}

// insertContext attaches the async insert settings.
func (r *Repository) insertContext(ctx context.Context) context.Context {
	if !r.cfg.AsyncInsert {
		return ctx
	}
	wait := 0
	if r.cfg.WaitForAsyncInsert {
		wait = 1
	}
	return clickhouse.Context(ctx, clickhouse.WithSettings(clickhouse.Settings{
		"async_insert":          1,
		"wait_for_async_insert": wait,
	}))
}

// CopyFrom appends rows to one native batch and sends it. Values must carry
// the exact Go type of their column; the driver does not coerce.
func (r *Repository) CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("clickhouse: CopyFrom: columns must not be empty")
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = dialect.QuoteFQN(c)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s)", dialect.QuoteFQN(r.cfg.Table), strings.Join(quoted, ", "))

	ictx := r.insertContext(ctx)
	batch, err := r.conn.PrepareBatch(ictx, query)
	if err != nil {
		return 0, fmt.Errorf("clickhouse: prepare batch: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			_ = batch.Abort()
			return 0, fmt.Errorf("clickhouse: row %d length %d != columns length %d", i, len(row), len(columns))
		}
		if err := batch.Append(row...); err != nil {
			_ = batch.Abort()
			return 0, fmt.Errorf("clickhouse: append row %d: %w", i, err)
		}
	}
	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("clickhouse: send: %w", err)
	}
	return int64(len(rows)), nil
}

// Count returns the number of rows in the target table.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n uint64
	if err := r.conn.QueryRow(ctx, "SELECT count() FROM "+dialect.QuoteFQN(r.cfg.Table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("clickhouse: count: %w", err)
	}
	return int64(n), nil
}

// Exec executes a SQL statement.
func (r *Repository) Exec(ctx context.Context, sql string) error {
	if strings.TrimSpace(sql) == "" {
		return nil
	}
	if err := r.conn.Exec(ctx, sql); err != nil {
		return fmt.Errorf("clickhouse: exec: %w", err)
	}
	return nil
}
