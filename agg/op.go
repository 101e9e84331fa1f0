// Package agg folds table columns into summary values, per group or for
// the table as a whole. Every aggregator starts from the identity of its
// operation, so a group with no rows still has a well-defined result:
// a count of 0, a mean of NaN, a min of +Inf, a max of -Inf, an Absent
// standard deviation. Absent cells infect every aggregate except count;
// NaN cells flow through arithmetic untouched.
package agg

import "natable/table"

// Aggregator folds the cells of one column into a single summary value.
// A fresh aggregator's Result is the operation's identity.
type Aggregator interface {
	Add(value table.Value)
	Result() table.Value
	RequiresNumeric() bool
}

type Factory func() Aggregator

func GetAggregatorFromName(name string) Aggregator {
	if name == "count" {
		return NewCountOp()
	} else if name == "mean" {
		return NewMeanOp()
	} else if name == "min" {
		return NewMinOp()
	} else if name == "max" {
		return NewMaxOp()
	} else if name == "sd" {
		return NewSdOp()
	} else {
		return nil
	}
}

// AggSpec names one output column: which input column to fold (empty for
// row counting), the output kind, and a factory for per-group aggregator
// instances.
type AggSpec struct {
	Out  string
	Col  string
	Kind table.Kind
	New  Factory
}

// Count tallies the rows of the group, Absent cells included.
func Count(out string) AggSpec {
	return AggSpec{Out: out, Kind: table.KindNumber,
		New: func() Aggregator { return NewCountOp() }}
}

func Mean(out, col string) AggSpec {
	return AggSpec{Out: out, Col: col, Kind: table.KindNumber,
		New: func() Aggregator { return NewMeanOp() }}
}

func Min(out, col string) AggSpec {
	return AggSpec{Out: out, Col: col, Kind: table.KindNumber,
		New: func() Aggregator { return NewMinOp() }}
}

func Max(out, col string) AggSpec {
	return AggSpec{Out: out, Col: col, Kind: table.KindNumber,
		New: func() Aggregator { return NewMaxOp() }}
}

func Sd(out, col string) AggSpec {
	return AggSpec{Out: out, Col: col, Kind: table.KindNumber,
		New: func() Aggregator { return NewSdOp() }}
}

func Custom(out, col string, kind table.Kind, factory Factory) AggSpec {
	return AggSpec{Out: out, Col: col, Kind: kind, New: factory}
}
