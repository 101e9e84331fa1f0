package agg

import (
	"fmt"
	"natable/grid"
	"natable/index"
	"natable/table"
)

// Aggregate folds the whole table into a single row. A table with no rows
// still produces that row, holding each aggregator's identity.
func Aggregate(t *table.Table, specs ...AggSpec) (*table.Table, error) {
	positions, schema, err := specPositions(t, specs)
	if err != nil {
		return nil, err
	}
	result, err := table.New(schema...)
	if err != nil {
		return nil, err
	}

	aggs := newAggregators(specs)
	for i := 0; i < t.NumRows(); i++ {
		feed(aggs, positions, t, i)
	}
	if err := result.AppendRow(results(aggs)...); err != nil {
		return nil, err
	}
	return result, nil
}

// GroupAggregate folds t per combination of the group columns. Groups come
// out in grid order over each column's observed domain, with category
// columns expanded to their declared level order. With retain set, a
// declared combination with no rows still gets a result row built from the
// aggregator identities; retaining demands a declared domain, so every
// group column must then be a category.
//
// An Absent group key is a group like any other. With no group columns the
// call is Aggregate.
func GroupAggregate(t *table.Table, groupBy []string, retain bool, specs ...AggSpec) (*table.Table, error) {
	if len(groupBy) == 0 {
		return Aggregate(t, specs...)
	}

	cols := t.Columns()
	groupPositions := make([]int, len(groupBy))
	domains := make([][]table.Value, len(groupBy))
	seen := make(map[string]bool, len(groupBy))
	for i, name := range groupBy {
		j := t.ColIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("agg: %w: no column %q", table.ErrInvalidColumn, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("agg: %w: column %q named twice", table.ErrInvalidColumn, name)
		}
		seen[name] = true
		if retain && cols[j].Kind != table.KindCategory {
			return nil, fmt.Errorf("agg: %w: retaining empty groups needs a declared domain, column %q is %s",
				table.ErrEmptyDomain, name, cols[j].Kind)
		}
		groupPositions[i] = j

		values, err := grid.Observed().Values(t, cols[j])
		if err != nil {
			return nil, err
		}
		domains[i] = values
	}

	positions, aggSchema, err := specPositions(t, specs)
	if err != nil {
		return nil, err
	}
	schema := make([]table.Column, 0, len(groupBy)+len(specs))
	for _, j := range groupPositions {
		schema = append(schema, cols[j])
	}
	schema = append(schema, aggSchema...)
	result, err := table.New(schema...)
	if err != nil {
		return nil, err
	}

	for _, domain := range domains {
		if len(domain) == 0 {
			return result, nil
		}
	}

	rowsByKey := make(map[string][]int, t.NumRows())
	tuple := make([]table.Value, len(groupPositions))
	for i := 0; i < t.NumRows(); i++ {
		for k, j := range groupPositions {
			tuple[k] = t.At(i, j)
		}
		key := index.EncodeKey(tuple...)
		rowsByKey[key] = append(rowsByKey[key], i)
	}

	outRow := make([]table.Value, len(schema))
	counters := make([]int, len(domains))
	for {
		for k := range counters {
			tuple[k] = domains[k][counters[k]]
		}
		key := index.EncodeKey(tuple...)
		matched, ok := rowsByKey[key]
		if ok || retain {
			aggs := newAggregators(specs)
			for _, i := range matched {
				feed(aggs, positions, t, i)
			}
			copy(outRow, tuple)
			copy(outRow[len(tuple):], results(aggs))
			if err := result.AppendRow(outRow...); err != nil {
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
	return result, nil
}

func specPositions(t *table.Table, specs []AggSpec) ([]int, []table.Column, error) {
	if len(specs) == 0 {
		return nil, nil, fmt.Errorf("agg: %w: no aggregations", table.ErrInvalidColumn)
	}
	cols := t.Columns()
	positions := make([]int, len(specs))
	schema := make([]table.Column, len(specs))
	for s, spec := range specs {
		if spec.New == nil {
			return nil, nil, fmt.Errorf("agg: %w: aggregation %q has no aggregator",
				table.ErrInvalidColumn, spec.Out)
		}
		positions[s] = -1
		if spec.Col == "" {
			if spec.New().RequiresNumeric() {
				return nil, nil, fmt.Errorf("agg: %w: aggregation %q needs an input column",
					table.ErrInvalidColumn, spec.Out)
			}
		} else {
			j := t.ColIndex(spec.Col)
			if j < 0 {
				return nil, nil, fmt.Errorf("agg: %w: no column %q", table.ErrInvalidColumn, spec.Col)
			}
			if spec.New().RequiresNumeric() && cols[j].Kind != table.KindNumber {
				return nil, nil, fmt.Errorf("agg: %w: %s column %q under numeric aggregation %q",
					table.ErrTypeMismatch, cols[j].Kind, spec.Col, spec.Out)
			}
			positions[s] = j
		}
		schema[s] = table.Column{Name: spec.Out, Kind: spec.Kind}
	}
	return positions, schema, nil
}

func newAggregators(specs []AggSpec) []Aggregator {
	aggs := make([]Aggregator, len(specs))
	for s, spec := range specs {
		aggs[s] = spec.New()
	}
	return aggs
}

func feed(aggs []Aggregator, positions []int, t *table.Table, row int) {
	for s, agg := range aggs {
		if positions[s] < 0 {
			agg.Add(table.Absent())
		} else {
			agg.Add(t.At(row, positions[s]))
		}
	}
}

func results(aggs []Aggregator) []table.Value {
	values := make([]table.Value, len(aggs))
	for s, agg := range aggs {
		values[s] = agg.Result()
	}
	return values
}
