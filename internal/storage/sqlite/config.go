package sqlite

// Config holds SQLite repository configuration derived from storage.Config.
type Config struct {
	// DSN is a SQLite connection string or file path, e.g.:
	//   "file:datafaker.db?_pragma=journal_mode(WAL)"
	//   ":memory:"
	DSN string

	// Table is the target table name, e.g. "images_analytical". Dotted
	// names such as "main.images_analytical" are quoted per segment.
	Table string

	// Columns is the ordered list of destination columns.
	Columns []string
}
