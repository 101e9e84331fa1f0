// Package table holds the row-oriented table model shared by every
// operation in this module: nullable scalar cells, typed columns with
// declared category domains, and immutable table snapshots.
package table

import (
	"math"
	"strconv"
)

type Kind uint8

const (
	KindAbsent Kind = iota
	KindNumber
	KindText
	KindBool
	KindCategory
)

func (kind Kind) String() string {
	switch kind {
	case KindAbsent:
		return "absent"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Value is a tagged nullable scalar. Absent is its own variant, distinct
// from every representable value including Number(NaN): NaN is a defined
// floating-point result, Absent is the lack of any value. The two must
// never collapse into each other.
type Value struct {
	kind  Kind
	num   float64
	text  string
	truth bool
}

func Absent() Value {
	return Value{kind: KindAbsent}
}

func Number(num float64) Value {
	return Value{kind: KindNumber, num: num}
}

func Text(text string) Value {
	return Value{kind: KindText, text: text}
}

func Bool(truth bool) Value {
	return Value{kind: KindBool, truth: truth}
}

// Category returns a categorical value carrying a level tag. Whether the
// tag is legal for a given column is decided by that column's declared
// domain when the value enters a table.
func Category(tag string) Value {
	return Value{kind: KindCategory, text: tag}
}

func (value Value) Kind() Kind {
	return value.kind
}

func (value Value) IsAbsent() bool {
	return value.kind == KindAbsent
}

// Num returns the numeric payload. Zero for non-number values.
func (value Value) Num() float64 {
	return value.num
}

// Str returns the text payload: the string of a Text value or the level
// tag of a Category value.
func (value Value) Str() string {
	return value.text
}

func (value Value) Truth() bool {
	return value.truth
}

func (value Value) IsNaN() bool {
	return value.kind == KindNumber && math.IsNaN(value.num)
}

// Key returns a canonical encoded token for grouping and key-set
// membership. Every NaN bit pattern maps to one token and negative zero
// maps to zero, so representationally identical values always collide.
func (value Value) Key() string {
	switch value.kind {
	case KindAbsent:
		return "a"
	case KindNumber:
		return "n" + canonNumber(value.num)
	case KindText:
		return "t" + value.text
	case KindBool:
		if value.truth {
			return "b1"
		}
		return "b0"
	case KindCategory:
		return "c" + value.text
	default:
		return "?"
	}
}

func canonNumber(num float64) string {
	if math.IsNaN(num) {
		return "nan"
	}
	if num == 0 {
		return "0"
	}
	return strconv.FormatFloat(num, 'g', -1, 64)
}

// Same reports representational identity: Absent matches Absent and NaN
// matches NaN. This is the identity used for grouping, key sets and test
// comparisons, as opposed to Equal's three-valued semantics.
func (value Value) Same(other Value) bool {
	return value.Key() == other.Key()
}

func (value Value) String() string {
	switch value.kind {
	case KindAbsent:
		return "NA"
	case KindNumber:
		return strconv.FormatFloat(value.num, 'g', -1, 64)
	case KindText, KindCategory:
		return value.text
	case KindBool:
		if value.truth {
			return "true"
		}
		return "false"
	default:
		return "?"
	}
}

// Numbers builds a number vector, a convenience for tests and callers.
func Numbers(nums ...float64) []Value {
	values := make([]Value, len(nums))
	for i, num := range nums {
		values[i] = Number(num)
	}
	return values
}

func Texts(texts ...string) []Value {
	values := make([]Value, len(texts))
	for i, text := range texts {
		values[i] = Text(text)
	}
	return values
}
