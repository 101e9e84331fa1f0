package agg

import (
	"math"
	"natable/table"
	"natable/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSdOp_Add(t *testing.T) {
	op := NewSdOp()
	for _, age := range []float64{60, 70, 25, 30, 80} {
		op.Add(table.Number(age))
	}

	utils.AssertClose(t, op.Result().Num(), 24.392622, 1e-6)
}

func TestSdOp_UndefinedBelowTwoObservations(t *testing.T) {
	op := NewSdOp()
	assert.True(t, op.Result().IsAbsent())

	op.Add(table.Number(42))
	assert.True(t, op.Result().IsAbsent())

	op.Add(table.Number(44))
	assert.False(t, op.Result().IsAbsent())
}

func TestSdOp_AbsentInfects(t *testing.T) {
	op := NewSdOp()
	op.Add(table.Number(1))
	op.Add(table.Number(2))
	op.Add(table.Absent())

	assert.True(t, op.Result().IsAbsent())
}

func TestSdOp_NaNStaysNumeric(t *testing.T) {
	op := NewSdOp()
	op.Add(table.Number(1))
	op.Add(table.Number(math.NaN()))

	assert.True(t, op.Result().IsNaN())
	assert.False(t, op.Result().IsAbsent())
}
