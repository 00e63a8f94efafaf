package storage

import (
	"context"
	"fmt"
	"sync"

	"datafaker/internal/ddl"
)

// DDLBootstrapper renders spec in a backend's dialect and applies it through
// repo.Exec. Implementations must be idempotent.
type DDLBootstrapper func(ctx context.Context, repo Repository, spec ddl.TableSpec) error

var (
	ddlMu  sync.RWMutex
	ddlFns = map[string]DDLBootstrapper{}
)

// RegisterDDL registers (or replaces) the bootstrapper for kind. Backends call
// it from init.
func RegisterDDL(kind string, fn DDLBootstrapper) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	ddlFns[kind] = fn
}

// EnsureTable creates the destination table for kind if it is missing.
func EnsureTable(ctx context.Context, kind string, repo Repository, spec ddl.TableSpec) error {
	ddlMu.RLock()
	fn, ok := ddlFns[kind]
	ddlMu.RUnlock()
	if !ok {
		return fmt.Errorf("no DDL bootstrapper registered for storage.kind=%q", kind)
	}
	return fn(ctx, repo, spec)
}
