package join

import (
	"natable/index"
	"natable/table"
)

// Matcher runs repeated anti-joins against slowly changing reference
// tables. It keeps an index.Store so the key set of each reference
// snapshot is built once and memoized; probing many tables against the
// same reference pays the indexing cost a single time.
type Matcher struct {
	store *index.Store
}

func NewMatcher(cacheEnabled bool) *Matcher {
	return &Matcher{store: index.NewStore(cacheEnabled)}
}

// Unmatched is UnmatchedKeys backed by the matcher's memoized key sets.
func (matcher *Matcher) Unmatched(x, y *table.Table, cols ...string) (*table.Table, error) {
	return matcher.UnmatchedBy(x, cols, y, cols)
}

// UnmatchedBy is UnmatchedKeysBy backed by the matcher's memoized key sets.
func (matcher *Matcher) UnmatchedBy(x *table.Table, xCols []string, y *table.Table, yCols []string) (*table.Table, error) {
	positions, err := pairKeyColumns(x, xCols, y, yCols)
	if err != nil {
		return nil, err
	}
	set, err := matcher.store.KeySet(y, yCols...)
	if err != nil {
		return nil, err
	}
	return filterUnmatched(x, positions, set)
}

func (matcher *Matcher) Close() {
	matcher.store.Close()
}
