package ddl

// ColumnDef is one rendered column: a dialect SQL type plus constraints.
// Names are unquoted; renderers quote them.
type ColumnDef struct {
	Name       string
	SQLType    string
	Nullable   bool
	PrimaryKey bool
	Default    string
}

// TableDef is a dialect-resolved table. Trailer is emitted verbatim after the
// closing parenthesis (ClickHouse ENGINE/ORDER BY/SETTINGS clauses).
type TableDef struct {
	FQN     string
	Columns []ColumnDef
	Trailer string
}

// Kind is a logical column type shared by every backend. Backends map it to
// their own SQL types.
type Kind string

const (
	KindUInt8      Kind = "uint8"
	KindUInt16     Kind = "uint16"
	KindUInt32     Kind = "uint32"
	KindFloat32    Kind = "float32"
	KindDecimal63  Kind = "decimal(6,3)"
	KindString     Kind = "string"
	KindLowCard    Kind = "lowcard"
	KindBool       Kind = "bool"
	KindDate       Kind = "date"
	KindDateTime   Kind = "datetime"
	KindUInt32List Kind = "array(uint32)"
	KindUInt8List  Kind = "array(uint8)"
)

// Field is a logical column.
type Field struct {
	Name     string
	Kind     Kind
	Nullable bool
}

// TableSpec describes a table independently of any dialect. Engine, OrderBy
// and Settings only apply to engines that understand them.
type TableSpec struct {
	Table      string
	Fields     []Field
	Engine     string
	OrderBy    []string
	Settings   map[string]string
	PrimaryKey []string
}

// Resolve maps every field through mapType. Nullability is carried over and
// primary-key membership is taken from spec.PrimaryKey.
func Resolve(spec TableSpec, mapType func(Kind) string) TableDef {
	pk := make(map[string]bool, len(spec.PrimaryKey))
	for _, c := range spec.PrimaryKey {
		pk[c] = true
	}
	cols := make([]ColumnDef, 0, len(spec.Fields))
	for _, f := range spec.Fields {
		cols = append(cols, ColumnDef{
			Name:       f.Name,
			SQLType:    mapType(f.Kind),
			Nullable:   f.Nullable,
			PrimaryKey: pk[f.Name],
		})
	}
	return TableDef{FQN: spec.Table, Columns: cols}
}
