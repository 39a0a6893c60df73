package engine

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{12, "12.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{0.5, "0.5"},
		{-2, "-2.0"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1 << 53, "9007199254740992.0"},
		{1e16, "1e+16"},
		{1.5e20, "1.5e+20"},
		{123456.789, "123456.789"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{"-3.5", -3.5},
		{"5.", 5},
		{"0.", 0},
		{".", 0},
		{"-", 0},
		{"", 0},
		{" 1", 0},
		{"1e+16", 1e16},
		{"AC", 0},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.s); got != tt.want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}

	if v := ParseNumber("inf"); !math.IsInf(v, 1) {
		t.Fatalf("ParseNumber(inf) = %v", v)
	}
	if v := ParseNumber("-inf"); !math.IsInf(v, -1) {
		t.Fatalf("ParseNumber(-inf) = %v", v)
	}
	if v := ParseNumber("nan"); !math.IsNaN(v) {
		t.Fatalf("ParseNumber(nan) = %v", v)
	}
	if v := ParseNumber("1e999"); !math.IsInf(v, 1) {
		t.Fatalf("ParseNumber(1e999) = %v", v)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []float64{1, -1, 0.1, 1.0 / 3, 2.5e-7, 6.02214076e23, 9999800001} {
		if got := ParseNumber(FormatNumber(v)); got != v {
			t.Fatalf("round trip %v -> %q -> %v", v, FormatNumber(v), got)
		}
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"0", "0"},
		{"123456789", "123456789"},
		{"-12345678", "-12345678"},
		{"9999800001.0", "9.999800e+09"},
		{"0.30000000000000004", "3.000000e-01"},
		{"1e+16", "1e+16"},
		{"1.5e+20000", "inf"},
		{"12345.678.9", "12345.678.9"},
		{"inf", "inf"},
		{"nan", "nan"},
	}
	for _, tt := range tests {
		if got := DisplayText(tt.display); got != tt.want {
			t.Fatalf("DisplayText(%q) = %q, want %q", tt.display, got, tt.want)
		}
	}
}
