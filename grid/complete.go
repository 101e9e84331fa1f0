package grid

import (
	"fmt"
	"natable/index"
	"natable/table"
)

// Complete expands t so every combination of the key domains appears at
// least once. Existing rows keep their observed values; a combination with
// no row is synthesized with Absent in every non-key column. Rows whose key
// tuple falls outside the requested domains are not dropped: they are
// appended after the grid in their original order.
//
// The result is in grid order, not input order: the cross-product is walked
// with the leftmost spec varying slowest, and rows sharing a key tuple stay
// together in their original relative order. With no specs the result is a
// plain copy.
func Complete(t *table.Table, specs ...KeySpec) (*table.Table, error) {
	if len(specs) == 0 {
		return copyOf(t)
	}

	cols := t.Columns()
	positions := make([]int, len(specs))
	domains := make([][]table.Value, len(specs))
	specSeen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		j := t.ColIndex(spec.Column)
		if j < 0 {
			return nil, fmt.Errorf("complete: %w: no column %q", table.ErrInvalidColumn, spec.Column)
		}
		if specSeen[spec.Column] {
			return nil, fmt.Errorf("complete: %w: column %q named twice", table.ErrInvalidColumn, spec.Column)
		}
		specSeen[spec.Column] = true
		positions[i] = j

		domain := spec.Domain
		if domain == nil {
			domain = Observed()
		}
		values, err := domain.Values(t, cols[j])
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("complete: %w: column %q", table.ErrEmptyDomain, spec.Column)
		}
		valueSeen := make(map[string]bool, len(values))
		for _, value := range values {
			key := value.Key()
			if valueSeen[key] {
				return nil, fmt.Errorf("complete: %w: duplicate domain value %s for column %q",
					table.ErrTypeMismatch, value, spec.Column)
			}
			valueSeen[key] = true
		}
		domains[i] = values
	}

	rowsByKey := make(map[string][]int, t.NumRows())
	tuple := make([]table.Value, len(positions))
	for i := 0; i < t.NumRows(); i++ {
		for k, j := range positions {
			tuple[k] = t.At(i, j)
		}
		key := index.EncodeKey(tuple...)
		rowsByKey[key] = append(rowsByKey[key], i)
	}

	result := table.NewLike(t)
	consumed := make([]bool, t.NumRows())
	counters := make([]int, len(specs))
	for {
		for k := range counters {
			tuple[k] = domains[k][counters[k]]
		}
		key := index.EncodeKey(tuple...)
		if matched, ok := rowsByKey[key]; ok {
			for _, i := range matched {
				if err := result.AppendRow(t.Row(i)...); err != nil {
					return nil, err
				}
				consumed[i] = true
			}
		} else {
			row := make([]table.Value, t.NumCols())
			for c := range row {
				row[c] = table.Absent()
			}
			for k, j := range positions {
				row[j] = tuple[k]
			}
			if err := result.AppendRow(row...); err != nil {
				return nil, err
			}
		}

		k := len(counters) - 1
		for k >= 0 {
			counters[k]++
			if counters[k] < len(domains[k]) {
				break
			}
			counters[k] = 0
			k--
		}
		if k < 0 {
			break
		}
	}

	for i := 0; i < t.NumRows(); i++ {
		if !consumed[i] {
			if err := result.AppendRow(t.Row(i)...); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

func copyOf(t *table.Table) (*table.Table, error) {
	result := table.NewLike(t)
	for i := 0; i < t.NumRows(); i++ {
		if err := result.AppendRow(t.Row(i)...); err != nil {
			return nil, err
		}
	}
	return result, nil
}
