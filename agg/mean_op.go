package agg

import "natable/table"

// MeanOp keeps a running sum and count. The empty group divides 0 by 0
// and yields NaN; an Absent cell makes the whole result Absent.
type MeanOp struct {
	sum    float64
	count  float64
	absent bool
}

func NewMeanOp() *MeanOp {
	return &MeanOp{}
}

func (op *MeanOp) Add(value table.Value) {
	if value.IsAbsent() {
		op.absent = true
		return
	}
	op.sum += value.Num()
	op.count += 1
}

func (op *MeanOp) Result() table.Value {
	if op.absent {
		return table.Absent()
	}
	return table.Number(op.sum / op.count)
}

func (op *MeanOp) RequiresNumeric() bool {
	return true
}
