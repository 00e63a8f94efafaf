// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) runs the init functions of each backend, which register their
// factories and DDL bootstrappers with the storage package.
//
// Importing this package makes the following storage kinds available:
//
//   - "clickhouse" (datafaker/internal/storage/clickhouse)
//   - "postgres"   (datafaker/internal/storage/postgres)
//   - "mysql"      (datafaker/internal/storage/mysql)
//   - "mssql"      (datafaker/internal/storage/mssql)
//   - "sqlite"     (datafaker/internal/storage/sqlite)
//
// Typical usage:
//
//	import _ "datafaker/internal/storage/all"
//
//	repo, err := storage.New(ctx, storage.Config{Kind: cfg.Storage.Kind, ...})
//	if err != nil {
//	    return err
//	}
//	defer repo.Close()
//
// A binary that needs only a subset of backends can import those packages
// directly instead.
package all

import (
	_ "datafaker/internal/storage/clickhouse"
	_ "datafaker/internal/storage/mssql"
	_ "datafaker/internal/storage/mysql"
	_ "datafaker/internal/storage/postgres"
	_ "datafaker/internal/storage/sqlite"
)
