package agg

import (
	"math"
	"natable/table"
	"natable/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxOp_Add(t *testing.T) {
	op := NewMaxOp()
	op.Add(table.Number(3))
	op.Add(table.Number(5))
	op.Add(table.Number(4))

	utils.AssertEqual(t, op.Result().Num(), 5.0)
}

func TestMaxOp_IdentityIsNegInf(t *testing.T) {
	op := NewMaxOp()
	utils.AssertEqual(t, op.Result().Num(), math.Inf(-1))
}

func TestMaxOp_NaNPoisons(t *testing.T) {
	op := NewMaxOp()
	op.Add(table.Number(math.NaN()))
	op.Add(table.Number(9))

	assert.True(t, op.Result().IsNaN())
}

func TestMaxOp_AbsentInfects(t *testing.T) {
	op := NewMaxOp()
	op.Add(table.Absent())
	op.Add(table.Number(9))

	assert.True(t, op.Result().IsAbsent())
}
