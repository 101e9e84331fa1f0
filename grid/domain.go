// Package grid turns implicit missing values into explicit ones: Complete
// expands a table to the full cross-product of key domains, Spread pivots
// a column into the grid's width. A key combination that should exist but
// has no row is an implicit gap; both operations materialize it as a row
// or cell holding Absent.
package grid

import (
	"fmt"
	"math"
	"natable/table"
	"sort"
)

// Domain supplies the legal values of one key column.
type Domain interface {
	Values(t *table.Table, col table.Column) ([]table.Value, error)
}

// KeySpec names a key column and where its domain comes from. A nil
// Domain means Observed.
type KeySpec struct {
	Column string
	Domain Domain
}

func Key(col string, domain Domain) KeySpec {
	return KeySpec{Column: col, Domain: domain}
}

type observedDomain struct{}

// Observed takes the values the table actually holds: distinct, sorted
// ascending, with Absent last when observed. A category column expands to
// its full declared level order instead, unobserved levels included,
// since the declared domain rather than the data says which levels exist.
func Observed() Domain {
	return observedDomain{}
}

func (observedDomain) Values(t *table.Table, col table.Column) ([]table.Value, error) {
	return observedValues(t, col)
}

type explicitDomain struct {
	values []table.Value
}

// Explicit supplies a literal ordered domain.
func Explicit(values ...table.Value) Domain {
	return explicitDomain{values: values}
}

func (domain explicitDomain) Values(_ *table.Table, _ table.Column) ([]table.Value, error) {
	return append([]table.Value(nil), domain.values...), nil
}

type numberRange struct {
	lo, hi, step float64
}

// NumberRange is the inclusive arithmetic sequence lo, lo+step, ..., hi.
func NumberRange(lo, hi, step float64) Domain {
	return numberRange{lo: lo, hi: hi, step: step}
}

func (domain numberRange) Values(_ *table.Table, col table.Column) ([]table.Value, error) {
	if col.Kind != table.KindNumber {
		return nil, fmt.Errorf("grid: %w: number range for %s column %q",
			table.ErrTypeMismatch, col.Kind, col.Name)
	}
	// NaN compares false against everything, so the ordering checks
	// below never reject it.
	if !finite(domain.lo) || !finite(domain.hi) || !finite(domain.step) {
		return nil, fmt.Errorf("grid: %w: non-finite range [%g, %g] step %g for column %q",
			table.ErrEmptyDomain, domain.lo, domain.hi, domain.step, col.Name)
	}
	if domain.step <= 0 {
		return nil, fmt.Errorf("grid: %w: non-positive step for column %q",
			table.ErrEmptyDomain, col.Name)
	}
	if domain.hi < domain.lo {
		return nil, fmt.Errorf("grid: %w: empty range [%g, %g] for column %q",
			table.ErrEmptyDomain, domain.lo, domain.hi, col.Name)
	}
	count := int(math.Floor((domain.hi-domain.lo)/domain.step+1e-9)) + 1
	values := make([]table.Value, count)
	for i := 0; i < count; i++ {
		values[i] = table.Number(domain.lo + float64(i)*domain.step)
	}
	return values, nil
}

func observedValues(t *table.Table, col table.Column) ([]table.Value, error) {
	j := t.ColIndex(col.Name)
	if j < 0 {
		return nil, fmt.Errorf("grid: %w: no column %q", table.ErrInvalidColumn, col.Name)
	}

	absentSeen := false
	if col.Kind == table.KindCategory {
		values := make([]table.Value, 0, len(col.Domain)+1)
		for _, level := range col.Domain {
			values = append(values, table.Category(level))
		}
		for i := 0; i < t.NumRows(); i++ {
			if t.At(i, j).IsAbsent() {
				absentSeen = true
				break
			}
		}
		if absentSeen {
			values = append(values, table.Absent())
		}
		return values, nil
	}

	seen := make(map[string]bool)
	nanSeen := false
	var values []table.Value
	for i := 0; i < t.NumRows(); i++ {
		value := t.At(i, j)
		if value.IsAbsent() {
			absentSeen = true
			continue
		}
		if value.IsNaN() {
			nanSeen = true
			continue
		}
		key := value.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		values = append(values, value)
	}
	sortValues(values, col.Kind)
	if nanSeen {
		values = append(values, table.Number(math.NaN()))
	}
	if absentSeen {
		values = append(values, table.Absent())
	}
	return values, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func sortValues(values []table.Value, kind table.Kind) {
	switch kind {
	case table.KindNumber:
		sort.Slice(values, func(a, b int) bool { return values[a].Num() < values[b].Num() })
	case table.KindText:
		sort.Slice(values, func(a, b int) bool { return values[a].Str() < values[b].Str() })
	case table.KindBool:
		sort.Slice(values, func(a, b int) bool { return !values[a].Truth() && values[b].Truth() })
	}
}
