// Package index builds distinct-key-tuple sets over table columns. Joins,
// grid completion and grouping all reduce to membership questions over
// these sets.
package index

import (
	"fmt"
	"natable/table"
	"strconv"
	"strings"
)

// EncodeKey folds a tuple of values into one canonical string. Tokens are
// length-prefixed so no tuple can masquerade as another; the per-value
// canonicalisation (NaN collapsing, -0) comes from Value.Key.
func EncodeKey(values ...table.Value) string {
	var encoded strings.Builder
	for _, value := range values {
		token := value.Key()
		encoded.WriteString(strconv.Itoa(len(token)))
		encoded.WriteByte(':')
		encoded.WriteString(token)
	}
	return encoded.String()
}

// KeySet is the set of distinct key tuples a table holds in the given
// columns. Membership is representational: Absent matches Absent and NaN
// matches NaN, the way the source data's join semantics treat missing keys.
type KeySet struct {
	members map[string]bool
}

func BuildKeySet(t *table.Table, cols ...string) (*KeySet, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("index: %w: no key columns given", table.ErrInvalidColumn)
	}
	positions := make([]int, len(cols))
	for i, col := range cols {
		j := t.ColIndex(col)
		if j < 0 {
			return nil, fmt.Errorf("index: %w: no column %q", table.ErrInvalidColumn, col)
		}
		positions[i] = j
	}

	members := make(map[string]bool, t.NumRows())
	tuple := make([]table.Value, len(positions))
	for i := 0; i < t.NumRows(); i++ {
		for k, j := range positions {
			tuple[k] = t.At(i, j)
		}
		members[EncodeKey(tuple...)] = true
	}
	return &KeySet{members: members}, nil
}

func (set *KeySet) Contains(values ...table.Value) bool {
	return set.members[EncodeKey(values...)]
}

func (set *KeySet) ContainsKey(encoded string) bool {
	return set.members[encoded]
}

func (set *KeySet) Len() int {
	return len(set.members)
}
