package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDisplayLen is the display length at which digit entry stops.
//
// It counts characters, so a sign or decimal point uses up a slot.
const MaxDisplayLen = 9

// Above this magnitude (and below minPlainMagnitude) numbers are printed
// with an exponent.
const (
	maxPlainMagnitude = 1 << 53
	minPlainMagnitude = 1e-4
)

// ParseNumber parses display text. Text that is not a number reads as 0.
func ParseNumber(s string) float64 {
	v, ok := parseNumber(s)
	if !ok {
		return 0
	}
	return v
}

func parseNumber(s string) (float64, bool) {
	if s == "" || strings.TrimSpace(s) != s {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow still yields ±Inf, which is what the text says.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// FormatNumber returns the default decimal description of v.
//
// Finite values use the shortest digits that round-trip and always carry a
// fractional part ("12.0", "0.5", "-0.0"). Magnitudes outside
// [1e-4, 2^53] use exponent form ("1e+16", "1e-05"). Non-finite values print
// as "inf", "-inf" and "nan".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	a := math.Abs(v)
	if a != 0 && (a < minPlainMagnitude || a > maxPlainMagnitude) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// DisplayText is the text shown for a display value.
//
// Values longer than MaxDisplayLen that parse as numbers are shown in
// scientific notation with six fractional digits ("1.234568e+09"); anything
// else is shown as is.
func DisplayText(display string) string {
	if len(display) <= MaxDisplayLen {
		return display
	}
	v, ok := parseNumber(display)
	if !ok {
		return display
	}
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%e", v)
}
