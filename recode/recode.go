// Package recode converts between explicit missing values and ordinary
// ones: Coalesce gives Absent cells a concrete default, SentinelToAbsent
// turns a conventional placeholder (a -99, an "N/A") back into Absent.
package recode

import (
	"fmt"
	"natable/table"
)

// Coalesce substitutes def for every Absent element. Everything else
// passes through untouched; NaN in particular is a defined number, not a
// missing one, and is never replaced. With a non-absent default the output
// contains no Absent elements.
func Coalesce(values []table.Value, def table.Value) []table.Value {
	out := make([]table.Value, len(values))
	for i, value := range values {
		if value.IsAbsent() {
			out[i] = def
		} else {
			out[i] = value
		}
	}
	return out
}

// CoalesceColumn applies Coalesce to one column, returning a new table.
func CoalesceColumn(t *table.Table, col string, def table.Value) (*table.Table, error) {
	j := t.ColIndex(col)
	if j < 0 {
		return nil, fmt.Errorf("coalesce: %w: no column %q", table.ErrInvalidColumn, col)
	}
	column, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	if !def.IsAbsent() && def.Kind() != column.Kind {
		return nil, fmt.Errorf("coalesce: %w: %s default for %s column %q",
			table.ErrTypeMismatch, def.Kind(), column.Kind, col)
	}

	rows := t.Rows()
	for i := range rows {
		if rows[i][j].IsAbsent() {
			rows[i][j] = def
		}
	}
	return rebuild(t, rows)
}

// SentinelToAbsent recodes elements equal to sentinel into Absent. The
// comparison is exact three-valued equality, so an element that is
// already Absent (comparison unknown) or NaN (equal to nothing) is never
// recoded, and no cross-kind coercion happens. Idempotent.
func SentinelToAbsent(values []table.Value, sentinel table.Value) []table.Value {
	out := make([]table.Value, len(values))
	for i, value := range values {
		if table.Equal(value, sentinel).IsTrue() {
			out[i] = table.Absent()
		} else {
			out[i] = value
		}
	}
	return out
}

// SentinelToAbsentColumn applies SentinelToAbsent to one column.
func SentinelToAbsentColumn(t *table.Table, col string, sentinel table.Value) (*table.Table, error) {
	j := t.ColIndex(col)
	if j < 0 {
		return nil, fmt.Errorf("sentinel: %w: no column %q", table.ErrInvalidColumn, col)
	}

	rows := t.Rows()
	for i := range rows {
		if table.Equal(rows[i][j], sentinel).IsTrue() {
			rows[i][j] = table.Absent()
		}
	}
	return rebuild(t, rows)
}

func rebuild(t *table.Table, rows [][]table.Value) (*table.Table, error) {
	out := table.NewLike(t)
	for _, row := range rows {
		if err := out.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return out, nil
}
