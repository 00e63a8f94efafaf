// Package storage defines the backend-agnostic bulk-load surface. Backends
// register a Factory under a kind name at init time; callers open them with
// New and never import a backend directly.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"datafaker/internal/ddl"
)

// Repository is one open connection to a destination table.
type Repository interface {
	// CopyFrom inserts rows as a single all-or-nothing batch. On error the
	// caller must assume none of the rows are stored.
	CopyFrom(ctx context.Context, columns []string, rows [][]any) (int64, error)
	// Exec runs a statement, typically DDL.
	Exec(ctx context.Context, sql string) error
	// Count returns the number of rows in the table.
	Count(ctx context.Context) (int64, error)
	Close()
}

// Config carries everything a backend needs to open a Repository.
type Config struct {
	Kind    string
	DSN     string
	Table   string
	Columns []string
	// Fields is the logical schema of Columns, in the same order. Backends
	// that need per-column conversions read it; others may ignore it.
	Fields []ddl.Field

	// AsyncInsert and WaitForAsyncInsert map to the ClickHouse settings of
	// the same name. Other backends ignore them.
	AsyncInsert        bool
	WaitForAsyncInsert bool
}

// Factory opens a Repository for cfg.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	regMu     sync.RWMutex
	factories = map[string]Factory{}
)

// Register installs (or replaces) the factory for kind.
func Register(kind string, f Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	factories[kind] = f
}

// New opens a Repository using the factory registered for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	regMu.RLock()
	f, ok := factories[cfg.Kind]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported storage.kind=%s", cfg.Kind)
	}
	return f(ctx, cfg)
}

// ListKinds returns a sorted snapshot of the registered kinds.
func ListKinds() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
