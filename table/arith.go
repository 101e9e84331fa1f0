package table

import (
	"fmt"
	"math"
)

// Arithmetic over nullable numbers. Absent is infectious: any Absent
// operand yields Absent before kinds are even checked. Everything else is
// plain IEEE float math, so 0/0, 0*Inf and Inf-Inf come out as NaN, a
// defined numeric result rather than a missing one.

func Add(a, b Value) (Value, error) {
	return numericBinary("add", a, b, func(x, y float64) float64 { return x + y })
}

func Sub(a, b Value) (Value, error) {
	return numericBinary("sub", a, b, func(x, y float64) float64 { return x - y })
}

func Mul(a, b Value) (Value, error) {
	return numericBinary("mul", a, b, func(x, y float64) float64 { return x * y })
}

func Div(a, b Value) (Value, error) {
	return numericBinary("div", a, b, func(x, y float64) float64 { return x / y })
}

func Sqrt(value Value) (Value, error) {
	if value.IsAbsent() {
		return Absent(), nil
	}
	if value.Kind() != KindNumber {
		return Value{}, fmt.Errorf("sqrt: %w: operand is %s, want number",
			ErrTypeMismatch, value.Kind())
	}
	return Number(math.Sqrt(value.Num())), nil
}

func numericBinary(op string, a, b Value, apply func(x, y float64) float64) (Value, error) {
	if a.IsAbsent() || b.IsAbsent() {
		return Absent(), nil
	}
	if a.Kind() != KindNumber || b.Kind() != KindNumber {
		return Value{}, fmt.Errorf("%s: %w: operands are %s and %s, want numbers",
			op, ErrTypeMismatch, a.Kind(), b.Kind())
	}
	return Number(apply(a.Num(), b.Num())), nil
}
