package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Button is one key of the calculator keypad.
type Button uint8

const (
	Digit0 Button = iota
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Decimal
	Negate
	Percent
	Clear
	Add
	Subtract
	Multiply
	Divide
	Equals

	buttonCount
)

// Category groups buttons by how they change the state.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryDigit
	CategoryDecimal
	CategoryNegate
	CategoryPercent
	CategoryClear
	CategoryOperator
	CategoryEquals
)

var ErrUnknownButton = errors.New("unknown button")

var buttonLabels = [buttonCount]string{
	Digit0:   "0",
	Digit1:   "1",
	Digit2:   "2",
	Digit3:   "3",
	Digit4:   "4",
	Digit5:   "5",
	Digit6:   "6",
	Digit7:   "7",
	Digit8:   "8",
	Digit9:   "9",
	Decimal:  ".",
	Negate:   "-/+",
	Percent:  "%",
	Clear:    "AC",
	Add:      "+",
	Subtract: "-",
	Multiply: "x",
	Divide:   "÷",
	Equals:   "=",
}

// Buttons returns every button in declaration order.
func Buttons() []Button {
	out := make([]Button, 0, buttonCount)
	for b := Button(0); b < buttonCount; b++ {
		out = append(out, b)
	}
	return out
}

// String returns the label printed on the key.
func (b Button) String() string {
	if b >= buttonCount {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return buttonLabels[b]
}

// Valid reports whether b is one of the declared buttons.
func (b Button) Valid() bool { return b < buttonCount }

func (b Button) Category() Category {
	switch {
	case b <= Digit9:
		return CategoryDigit
	case b == Decimal:
		return CategoryDecimal
	case b == Negate:
		return CategoryNegate
	case b == Percent:
		return CategoryPercent
	case b == Clear:
		return CategoryClear
	case b >= Add && b <= Divide:
		return CategoryOperator
	case b == Equals:
		return CategoryEquals
	default:
		return CategoryUnknown
	}
}

// Operation returns the binary operation an operator button selects.
func (b Button) Operation() Operation {
	switch b {
	case Add:
		return OpAdd
	case Subtract:
		return OpSubtract
	case Multiply:
		return OpMultiply
	case Divide:
		return OpDivide
	default:
		return OpNone
	}
}

// ParseButton maps a key label to its button.
//
// Besides the printed labels, "/" and "*" are accepted for ÷ and x, and
// "C" for AC.
func ParseButton(label string) (Button, error) {
	switch label {
	case "/":
		return Divide, nil
	case "*", "X", "×":
		return Multiply, nil
	case "C":
		return Clear, nil
	case "+/-":
		return Negate, nil
	}
	for b := Button(0); b < buttonCount; b++ {
		if buttonLabels[b] == label {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, label)
}

// ParseSequence parses whitespace-separated key labels.
func ParseSequence(s string) ([]Button, error) {
	fields := strings.Fields(s)
	out := make([]Button, 0, len(fields))
	for _, f := range fields {
		b, err := ParseButton(f)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
