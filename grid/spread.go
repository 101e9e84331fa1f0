package grid

import (
	"fmt"
	"natable/index"
	"natable/table"
)

// Spread pivots t wider: every distinct value of namesFrom becomes a new
// column filled from valuesFrom, and the remaining columns identify the
// output rows. A (row, name) pair with no observation turns into an Absent
// cell, so implicit gaps in the long layout become explicit in the wide
// one. Two rows claiming the same cell is an error.
//
// New columns follow the namesFrom order of Observed: a category namesFrom
// yields one column per declared level even when unobserved.
func Spread(t *table.Table, namesFrom, valuesFrom string) (*table.Table, error) {
	nameIdx := t.ColIndex(namesFrom)
	if nameIdx < 0 {
		return nil, fmt.Errorf("spread: %w: no column %q", table.ErrInvalidColumn, namesFrom)
	}
	valueIdx := t.ColIndex(valuesFrom)
	if valueIdx < 0 {
		return nil, fmt.Errorf("spread: %w: no column %q", table.ErrInvalidColumn, valuesFrom)
	}
	if nameIdx == valueIdx {
		return nil, fmt.Errorf("spread: %w: names and values both %q", table.ErrInvalidColumn, namesFrom)
	}

	cols := t.Columns()
	names, err := observedValues(t, cols[nameIdx])
	if err != nil {
		return nil, err
	}

	var idPositions []int
	for j := range cols {
		if j != nameIdx && j != valueIdx {
			idPositions = append(idPositions, j)
		}
	}

	schema := make([]table.Column, 0, len(idPositions)+len(names))
	for _, j := range idPositions {
		schema = append(schema, cols[j])
	}
	valueCol := cols[valueIdx]
	slotByName := make(map[string]int, len(names))
	for _, name := range names {
		slotByName[name.Key()] = len(schema)
		schema = append(schema, table.Column{
			Name:   name.String(),
			Kind:   valueCol.Kind,
			Domain: append([]string(nil), valueCol.Domain...),
		})
	}
	result, err := table.New(schema...)
	if err != nil {
		return nil, err
	}

	var rows [][]table.Value
	var filled [][]bool
	rowByKey := make(map[string]int)
	idTuple := make([]table.Value, len(idPositions))
	for i := 0; i < t.NumRows(); i++ {
		for k, j := range idPositions {
			idTuple[k] = t.At(i, j)
		}
		key := index.EncodeKey(idTuple...)
		r, ok := rowByKey[key]
		if !ok {
			row := make([]table.Value, len(schema))
			for c, value := range idTuple {
				row[c] = value
			}
			for c := len(idPositions); c < len(schema); c++ {
				row[c] = table.Absent()
			}
			r = len(rows)
			rows = append(rows, row)
			filled = append(filled, make([]bool, len(schema)))
			rowByKey[key] = r
		}

		name := t.At(i, nameIdx)
		slot := slotByName[name.Key()]
		if filled[r][slot] {
			return nil, fmt.Errorf("spread: %w: duplicate entry for %s", table.ErrTypeMismatch, name)
		}
		filled[r][slot] = true
		rows[r][slot] = t.At(i, valueIdx)
	}

	for _, row := range rows {
		if err := result.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return result, nil
}
