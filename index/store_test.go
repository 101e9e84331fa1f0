package index

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"natable/table"
	"testing"
)

func TestStore_Memoizes(t *testing.T) {
	store := NewStore(true)
	defer store.Close()
	tbl := pairsTable(t)

	first, err := store.KeySet(tbl, "year", "qtr")
	require.NoError(t, err)
	store.Wait()

	second, err := store.KeySet(tbl, "year", "qtr")
	require.NoError(t, err)
	assert.True(t, first == second)

	// A different column selection is a different entry.
	other, err := store.KeySet(tbl, "year")
	require.NoError(t, err)
	assert.False(t, first == other)
	assert.Equal(t, other.Len(), 2)
}

func TestStore_CacheDisabled(t *testing.T) {
	store := NewStore(false)
	defer store.Close()
	tbl := pairsTable(t)

	first, err := store.KeySet(tbl, "year", "qtr")
	require.NoError(t, err)
	store.Wait()

	second, err := store.KeySet(tbl, "year", "qtr")
	require.NoError(t, err)

	// Fresh sets each time, same answers.
	assert.False(t, first == second)
	assert.Equal(t, first.Len(), second.Len())
	assert.True(t, second.Contains(table.Number(2022), table.Number(1)))
}

func TestStore_DistinctSnapshots(t *testing.T) {
	store := NewStore(true)
	defer store.Close()

	a := pairsTable(t)
	b := pairsTable(t)
	require.NotEqual(t, a.Id(), b.Id())

	setA, err := store.KeySet(a, "year")
	require.NoError(t, err)
	store.Wait()
	setB, err := store.KeySet(b, "year")
	require.NoError(t, err)

	// Equal content, separate cache entries keyed by snapshot id.
	assert.False(t, setA == setB)
	assert.Equal(t, setA.Len(), setB.Len())
}
