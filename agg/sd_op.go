package agg

import (
	"natable/stats"
	"natable/table"
)

// SdOp is the sample standard deviation over a Welford fold. Fewer than
// two observations leave the deviation undefined, which reports as
// Absent rather than a number.
type SdOp struct {
	welford *stats.Welford
	absent  bool
}

func NewSdOp() *SdOp {
	return &SdOp{welford: stats.NewWelford()}
}

func (op *SdOp) Add(value table.Value) {
	if value.IsAbsent() {
		op.absent = true
		return
	}
	op.welford.Update(value.Num())
}

func (op *SdOp) Result() table.Value {
	if op.absent || op.welford.GetCount() < 2 {
		return table.Absent()
	}
	return table.Number(op.welford.GetSD())
}

func (op *SdOp) RequiresNumeric() bool {
	return true
}
