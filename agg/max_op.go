package agg

import (
	"math"
	"natable/table"
)

// MaxOp folds with math.Max from the identity -Inf.
type MaxOp struct {
	max    float64
	absent bool
}

func NewMaxOp() *MaxOp {
	return &MaxOp{max: math.Inf(-1)}
}

func (op *MaxOp) Add(value table.Value) {
	if value.IsAbsent() {
		op.absent = true
		return
	}
	op.max = math.Max(op.max, value.Num())
}

func (op *MaxOp) Result() table.Value {
	if op.absent {
		return table.Absent()
	}
	return table.Number(op.max)
}

func (op *MaxOp) RequiresNumeric() bool {
	return true
}
