package agg

import (
	"math"
	"natable/table"
)

// MinOp folds with math.Min from the identity +Inf, so the empty group
// reports +Inf and a NaN cell poisons the fold.
type MinOp struct {
	min    float64
	absent bool
}

func NewMinOp() *MinOp {
	return &MinOp{min: math.Inf(1)}
}

func (op *MinOp) Add(value table.Value) {
	if value.IsAbsent() {
		op.absent = true
		return
	}
	op.min = math.Min(op.min, value.Num())
}

func (op *MinOp) Result() table.Value {
	if op.absent {
		return table.Absent()
	}
	return table.Number(op.min)
}

func (op *MinOp) RequiresNumeric() bool {
	return true
}
