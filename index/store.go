package index

import (
	"natable/table"
	"strconv"

	"github.com/dgraph-io/ristretto"
)

// Store memoizes KeySets. Tables are immutable snapshots with process
// unique ids, so a (snapshot id, columns) pair identifies a key set for
// good and recomputing one per probe against the same reference table is
// wasted work. Cost is the member count, so eviction sheds the largest
// sets first when the cache fills.
type Store struct {
	cacheEnabled bool
	keySetCache  *ristretto.Cache
}

func NewStore(cacheEnabled bool) *Store {
	keySetCache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 22,
		BufferItems: 64,
	})
	return &Store{
		cacheEnabled: cacheEnabled,
		keySetCache:  keySetCache,
	}
}

func cacheKey(tableId int64, cols []string) string {
	key := strconv.FormatInt(tableId, 10)
	for _, col := range cols {
		key += "/" + strconv.Itoa(len(col)) + ":" + col
	}
	return key
}

func (store *Store) KeySet(t *table.Table, cols ...string) (*KeySet, error) {
	if store.cacheEnabled {
		if cached, found := store.keySetCache.Get(cacheKey(t.Id(), cols)); found {
			return cached.(*KeySet), nil
		}
	}
	set, err := BuildKeySet(t, cols...)
	if err != nil {
		return nil, err
	}
	if store.cacheEnabled {
		store.keySetCache.Set(cacheKey(t.Id(), cols), set, int64(set.Len())+1)
	}
	return set, nil
}

// Wait flushes pending cache writes. Only needed when a caller must
// observe a hit immediately after a miss, as the tests do.
func (store *Store) Wait() {
	store.keySetCache.Wait()
}

func (store *Store) Close() {
	store.keySetCache.Close()
}
