package table

import (
	"fmt"
	"sync/atomic"
)

// Column declares a name and a scalar kind. Category columns additionally
// carry their full ordered level domain, which may well exceed the levels
// observed in any particular table. Aggregation over unobserved levels
// depends on the schema owning this domain, not the data.
type Column struct {
	Name   string
	Kind   Kind
	Domain []string
}

func NumberColumn(name string) Column {
	return Column{Name: name, Kind: KindNumber}
}

func TextColumn(name string) Column {
	return Column{Name: name, Kind: KindText}
}

func BoolColumn(name string) Column {
	return Column{Name: name, Kind: KindBool}
}

func CategoryColumn(name string, levels ...string) Column {
	return Column{Name: name, Kind: KindCategory, Domain: levels}
}

func (col Column) hasLevel(tag string) bool {
	for _, level := range col.Domain {
		if level == tag {
			return true
		}
	}
	return false
}

func (col Column) clone() Column {
	cloned := col
	if col.Domain != nil {
		cloned.Domain = append([]string(nil), col.Domain...)
	}
	return cloned
}

func (col Column) same(other Column) bool {
	if col.Name != other.Name || col.Kind != other.Kind || len(col.Domain) != len(other.Domain) {
		return false
	}
	for i, level := range col.Domain {
		if other.Domain[i] != level {
			return false
		}
	}
	return true
}

var snapshotCounter int64 = 0

// Table is an ordered, rectangular sequence of rows over a fixed column
// schema. Every row covers every declared column, possibly with Absent.
// Build a table with AppendRow, then treat it as an immutable snapshot:
// no operation in this module mutates its inputs, each produces a fresh
// table with a fresh snapshot id.
type Table struct {
	id   int64
	cols []Column
	rows [][]Value
}

func New(cols ...Column) (*Table, error) {
	seen := make(map[string]bool, len(cols))
	for _, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("table: %w: empty column name", ErrInvalidColumn)
		}
		if seen[col.Name] {
			return nil, fmt.Errorf("table: %w: duplicate column %q", ErrInvalidColumn, col.Name)
		}
		seen[col.Name] = true
		if col.Kind == KindAbsent {
			return nil, fmt.Errorf("table: %w: column %q cannot be declared absent",
				ErrTypeMismatch, col.Name)
		}
		if col.Kind == KindCategory {
			if len(col.Domain) == 0 {
				return nil, fmt.Errorf("table: %w: category column %q has no levels",
					ErrEmptyDomain, col.Name)
			}
			levels := make(map[string]bool, len(col.Domain))
			for _, level := range col.Domain {
				if levels[level] {
					return nil, fmt.Errorf("table: %w: category column %q repeats level %q",
						ErrTypeMismatch, col.Name, level)
				}
				levels[level] = true
			}
		} else if len(col.Domain) != 0 {
			return nil, fmt.Errorf("table: %w: %s column %q declares a level domain",
				ErrTypeMismatch, col.Kind, col.Name)
		}
	}
	return newTable(cloneSchema(cols)), nil
}

// NewLike returns an empty table with the same schema as t.
func NewLike(t *Table) *Table {
	return newTable(cloneSchema(t.cols))
}

func newTable(cols []Column) *Table {
	return &Table{
		id:   atomic.AddInt64(&snapshotCounter, 1),
		cols: cols,
		rows: make([][]Value, 0),
	}
}

func cloneSchema(cols []Column) []Column {
	cloned := make([]Column, len(cols))
	for i, col := range cols {
		cloned[i] = col.clone()
	}
	return cloned
}

// AppendRow adds one row during construction. The row must cover exactly
// the declared columns; each cell is Absent or matches its column's kind,
// and category tags must come from the declared domain.
func (t *Table) AppendRow(values ...Value) error {
	if len(values) != len(t.cols) {
		return fmt.Errorf("table: %w: row has %d values, schema has %d columns",
			ErrTypeMismatch, len(values), len(t.cols))
	}
	for i, value := range values {
		if value.IsAbsent() {
			continue
		}
		col := t.cols[i]
		if value.Kind() != col.Kind {
			return fmt.Errorf("table: %w: %s value in %s column %q",
				ErrTypeMismatch, value.Kind(), col.Kind, col.Name)
		}
		if col.Kind == KindCategory && !col.hasLevel(value.Str()) {
			return fmt.Errorf("table: %w: tag %q is not a level of column %q",
				ErrTypeMismatch, value.Str(), col.Name)
		}
	}
	t.rows = append(t.rows, append([]Value(nil), values...))
	return nil
}

// Id is the process-unique snapshot id, used to key memoized indexes.
func (t *Table) Id() int64 {
	return t.id
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

func (t *Table) NumCols() int {
	return len(t.cols)
}

func (t *Table) Columns() []Column {
	return cloneSchema(t.cols)
}

func (t *Table) Column(name string) (Column, error) {
	if i := t.ColIndex(name); i >= 0 {
		return t.cols[i].clone(), nil
	}
	return Column{}, fmt.Errorf("table: %w: no column %q", ErrInvalidColumn, name)
}

// ColIndex returns the position of the named column, -1 when undeclared.
func (t *Table) ColIndex(name string) int {
	for i, col := range t.cols {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// At returns the cell at row i, column j. Out-of-range indices panic.
func (t *Table) At(i, j int) Value {
	return t.rows[i][j]
}

func (t *Table) Cell(i int, name string) (Value, error) {
	j := t.ColIndex(name)
	if j < 0 {
		return Value{}, fmt.Errorf("table: %w: no column %q", ErrInvalidColumn, name)
	}
	return t.rows[i][j], nil
}

func (t *Table) Row(i int) []Value {
	return append([]Value(nil), t.rows[i]...)
}

func (t *Table) Rows() [][]Value {
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]Value(nil), row...)
	}
	return rows
}

// Same reports representational identity of schema and every cell, with
// Absent matching Absent and NaN matching NaN.
func (t *Table) Same(other *Table) bool {
	if len(t.cols) != len(other.cols) || len(t.rows) != len(other.rows) {
		return false
	}
	for i, col := range t.cols {
		if !col.same(other.cols[i]) {
			return false
		}
	}
	for i, row := range t.rows {
		for j, value := range row {
			if !value.Same(other.rows[i][j]) {
				return false
			}
		}
	}
	return true
}
