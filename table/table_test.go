package table

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNew_SchemaValidation(t *testing.T) {
	_, err := New(NumberColumn("x"), TextColumn("x"))
	assert.True(t, errors.Is(err, ErrInvalidColumn))

	_, err = New(Column{Name: "", Kind: KindNumber})
	assert.True(t, errors.Is(err, ErrInvalidColumn))

	_, err = New(Column{Name: "c", Kind: KindCategory})
	assert.True(t, errors.Is(err, ErrEmptyDomain))

	_, err = New(CategoryColumn("c", "yes", "yes"))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = New(Column{Name: "n", Kind: KindNumber, Domain: []string{"a"}})
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = New(Column{Name: "a", Kind: KindAbsent})
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestTable_AppendRow(t *testing.T) {
	tbl, err := New(TextColumn("name"), NumberColumn("age"))
	require.NoError(t, err)

	require.NoError(t, tbl.AppendRow(Text("ann"), Number(41)))
	require.NoError(t, tbl.AppendRow(Absent(), Absent()))
	assert.Equal(t, tbl.NumRows(), 2)

	err = tbl.AppendRow(Text("bob"))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	err = tbl.AppendRow(Number(1), Number(2))
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.Equal(t, tbl.NumRows(), 2)
}

func TestTable_CategoryDomainEnforced(t *testing.T) {
	tbl, err := New(CategoryColumn("smoker", "yes", "no"))
	require.NoError(t, err)

	require.NoError(t, tbl.AppendRow(Category("no")))
	require.NoError(t, tbl.AppendRow(Absent()))

	err = tbl.AppendRow(Category("sometimes"))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	err = tbl.AppendRow(Text("no"))
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestTable_Accessors(t *testing.T) {
	tbl, err := New(TextColumn("name"), NumberColumn("age"))
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow(Text("ann"), Number(41)))

	assert.Equal(t, tbl.NumCols(), 2)
	assert.Equal(t, tbl.ColIndex("age"), 1)
	assert.Equal(t, tbl.ColIndex("ghost"), -1)

	col, err := tbl.Column("name")
	require.NoError(t, err)
	assert.Equal(t, col.Kind, KindText)

	_, err = tbl.Column("ghost")
	assert.True(t, errors.Is(err, ErrInvalidColumn))

	cell, err := tbl.Cell(0, "age")
	require.NoError(t, err)
	assert.Equal(t, cell.Num(), 41.0)

	assert.True(t, tbl.At(0, 0).Same(Text("ann")))
}

func TestTable_RowsAreCopies(t *testing.T) {
	tbl, err := New(NumberColumn("x"))
	require.NoError(t, err)
	require.NoError(t, tbl.AppendRow(Number(1)))

	rows := tbl.Rows()
	rows[0][0] = Number(99)
	assert.True(t, tbl.At(0, 0).Same(Number(1)))

	row := tbl.Row(0)
	row[0] = Number(98)
	assert.True(t, tbl.At(0, 0).Same(Number(1)))
}

func TestTable_Same(t *testing.T) {
	build := func() *Table {
		tbl, err := New(TextColumn("name"), NumberColumn("age"))
		require.NoError(t, err)
		require.NoError(t, tbl.AppendRow(Text("ann"), Absent()))
		return tbl
	}
	a := build()
	b := build()
	assert.True(t, a.Same(b))

	require.NoError(t, b.AppendRow(Text("bob"), Number(3)))
	assert.False(t, a.Same(b))

	other, err := New(TextColumn("name"), NumberColumn("years"))
	require.NoError(t, err)
	require.NoError(t, other.AppendRow(Text("ann"), Absent()))
	assert.False(t, a.Same(other))
}

func TestTable_SnapshotIds(t *testing.T) {
	a, err := New(NumberColumn("x"))
	require.NoError(t, err)
	b := NewLike(a)
	assert.NotEqual(t, a.Id(), b.Id())
}
