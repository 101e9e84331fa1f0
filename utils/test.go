package utils

import (
	"math"
	"natable/table"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

func AssertClose(t *testing.T, a float64, b float64, eps float64) {
	t.Helper()
	if math.Abs(a-b) > eps {
		t.Fatalf("Expected close: %v != %v (eps %v)\n", a, b, eps)
	}
}

// AssertSameTable compares schema and cells representationally, so Absent
// matches Absent and NaN matches NaN. The failure message is a go-cmp diff.
func AssertSameTable(t *testing.T, got *table.Table, want *table.Table) {
	t.Helper()
	if got.Same(want) {
		return
	}
	sameValue := cmp.Comparer(func(a, b table.Value) bool { return a.Same(b) })
	t.Fatalf("Tables differ.\nschema (-got +want):\n%s\nrows (-got +want):\n%s",
		cmp.Diff(got.Columns(), want.Columns()),
		cmp.Diff(got.Rows(), want.Rows(), sameValue))
}
