package engine

import (
	"math"
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		op   Operation
		a, b float64
		want float64
	}{
		{OpAdd, 7, 5, 12},
		{OpSubtract, 7, 5, 2},
		{OpMultiply, 7, 5, 35},
		{OpDivide, 7, 2, 3.5},
	}
	for _, tt := range tests {
		got, ok := tt.op.Combine(tt.a, tt.b)
		if !ok || got != tt.want {
			t.Fatalf("%s(%v, %v) = %v, %v", tt.op, tt.a, tt.b, got, ok)
		}
	}

	if _, ok := OpNone.Combine(1, 2); ok {
		t.Fatal("OpNone should not produce a result")
	}
	if v, _ := OpDivide.Combine(1, 0); !math.IsInf(v, 1) {
		t.Fatalf("1/0 = %v", v)
	}
	if v, _ := OpDivide.Combine(0, 0); !math.IsNaN(v) {
		t.Fatalf("0/0 = %v", v)
	}
}
