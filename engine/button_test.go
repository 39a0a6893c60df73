package engine

import (
	"errors"
	"testing"
)

func TestButtonLabelsRoundTrip(t *testing.T) {
	for _, b := range Buttons() {
		got, err := ParseButton(b.String())
		if err != nil {
			t.Fatalf("ParseButton(%q): %v", b, err)
		}
		if got != b {
			t.Fatalf("ParseButton(%q) = %v", b.String(), got)
		}
	}
}

func TestParseButtonAliases(t *testing.T) {
	tests := map[string]Button{
		"/":   Divide,
		"÷":   Divide,
		"*":   Multiply,
		"x":   Multiply,
		"C":   Clear,
		"+/-": Negate,
		"-":   Subtract,
	}
	for label, want := range tests {
		got, err := ParseButton(label)
		if err != nil {
			t.Fatalf("ParseButton(%q): %v", label, err)
		}
		if got != want {
			t.Fatalf("ParseButton(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestParseButtonUnknown(t *testing.T) {
	_, err := ParseButton("sqrt")
	if !errors.Is(err, ErrUnknownButton) {
		t.Fatalf("expected ErrUnknownButton, got %v", err)
	}
	if _, err := ParseSequence("1 + sqrt"); !errors.Is(err, ErrUnknownButton) {
		t.Fatalf("expected ErrUnknownButton from sequence, got %v", err)
	}
}

func TestParseSequence(t *testing.T) {
	got, err := ParseSequence("  7 +\t5\n= ")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	want := []Button{Digit7, Add, Digit5, Equals}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCategories(t *testing.T) {
	tests := map[Button]Category{
		Digit0:     CategoryDigit,
		Digit9:     CategoryDigit,
		Decimal:    CategoryDecimal,
		Negate:     CategoryNegate,
		Percent:    CategoryPercent,
		Clear:      CategoryClear,
		Add:        CategoryOperator,
		Divide:     CategoryOperator,
		Equals:     CategoryEquals,
		Button(99): CategoryUnknown,
	}
	for b, want := range tests {
		if got := b.Category(); got != want {
			t.Fatalf("%v.Category() = %v, want %v", b, got, want)
		}
	}
	if Equals.Operation() != OpNone || Multiply.Operation() != OpMultiply {
		t.Fatal("unexpected operator mapping")
	}
	if Button(99).Valid() || !Equals.Valid() {
		t.Fatal("unexpected Valid result")
	}
}
