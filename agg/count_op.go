package agg

import "natable/table"

// CountOp tallies rows. It never looks at the cell, so Absent and NaN
// rows count like any other and the empty group counts to 0.
type CountOp struct {
	count float64
}

func NewCountOp() *CountOp {
	return &CountOp{}
}

func (op *CountOp) Add(_ table.Value) {
	op.count += 1
}

func (op *CountOp) Result() table.Value {
	return table.Number(op.count)
}

func (op *CountOp) RequiresNumeric() bool {
	return false
}
