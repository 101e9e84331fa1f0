// Package join checks key relationships between two tables. Its core
// operation is the anti-join: which key tuples of one table have no match
// in another. Matching is representational, so Absent matches Absent and
// NaN matches NaN; a gap in a key column is a value to report, not a
// reason to skip the row.
package join

import (
	"fmt"
	"natable/index"
	"natable/table"
)

// Distinct keeps the first occurrence of every tuple over the named
// columns, in input order. The result carries only those columns; with no
// columns named, whole rows are deduplicated and the schema is kept.
func Distinct(t *table.Table, cols ...string) (*table.Table, error) {
	if len(cols) == 0 {
		for _, col := range t.Columns() {
			cols = append(cols, col.Name)
		}
	}
	positions, err := columnPositions(t, cols)
	if err != nil {
		return nil, err
	}

	all := t.Columns()
	schema := make([]table.Column, len(positions))
	for i, j := range positions {
		schema[i] = all[j]
	}
	result, err := table.New(schema...)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, t.NumRows())
	tuple := make([]table.Value, len(positions))
	for i := 0; i < t.NumRows(); i++ {
		for k, j := range positions {
			tuple[k] = t.At(i, j)
		}
		key := index.EncodeKey(tuple...)
		if seen[key] {
			continue
		}
		seen[key] = true
		if err := result.AppendRow(tuple...); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UnmatchedKeys anti-joins x against y on columns the two tables share by
// name: the result holds the distinct key tuples of x with no match in y,
// in first-occurrence order.
func UnmatchedKeys(x, y *table.Table, cols ...string) (*table.Table, error) {
	return UnmatchedKeysBy(x, cols, y, cols)
}

// UnmatchedKeysBy is UnmatchedKeys with separately named key columns per
// side, paired positionally. Paired columns must agree in kind.
func UnmatchedKeysBy(x *table.Table, xCols []string, y *table.Table, yCols []string) (*table.Table, error) {
	positions, err := pairKeyColumns(x, xCols, y, yCols)
	if err != nil {
		return nil, err
	}
	set, err := index.BuildKeySet(y, yCols...)
	if err != nil {
		return nil, err
	}
	return filterUnmatched(x, positions, set)
}

func filterUnmatched(x *table.Table, positions []int, set *index.KeySet) (*table.Table, error) {
	all := x.Columns()
	schema := make([]table.Column, len(positions))
	for i, j := range positions {
		schema[i] = all[j]
	}
	result, err := table.New(schema...)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tuple := make([]table.Value, len(positions))
	for i := 0; i < x.NumRows(); i++ {
		for k, j := range positions {
			tuple[k] = x.At(i, j)
		}
		key := index.EncodeKey(tuple...)
		if set.ContainsKey(key) || seen[key] {
			continue
		}
		seen[key] = true
		if err := result.AppendRow(tuple...); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func pairKeyColumns(x *table.Table, xCols []string, y *table.Table, yCols []string) ([]int, error) {
	if len(xCols) == 0 {
		return nil, fmt.Errorf("join: %w: no key columns", table.ErrInvalidColumn)
	}
	if len(xCols) != len(yCols) {
		return nil, fmt.Errorf("join: %w: %d key columns vs %d",
			table.ErrInvalidColumn, len(xCols), len(yCols))
	}
	positions, err := columnPositions(x, xCols)
	if err != nil {
		return nil, err
	}
	yPositions, err := columnPositions(y, yCols)
	if err != nil {
		return nil, err
	}
	xAll, yAll := x.Columns(), y.Columns()
	for i := range positions {
		xCol, yCol := xAll[positions[i]], yAll[yPositions[i]]
		if xCol.Kind != yCol.Kind {
			return nil, fmt.Errorf("join: %w: key column %q is %s, %q is %s",
				table.ErrTypeMismatch, xCol.Name, xCol.Kind, yCol.Name, yCol.Kind)
		}
	}
	return positions, nil
}

func columnPositions(t *table.Table, cols []string) ([]int, error) {
	positions := make([]int, len(cols))
	seen := make(map[string]bool, len(cols))
	for i, name := range cols {
		j := t.ColIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("join: %w: no column %q", table.ErrInvalidColumn, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("join: %w: column %q named twice", table.ErrInvalidColumn, name)
		}
		seen[name] = true
		positions[i] = j
	}
	return positions, nil
}
