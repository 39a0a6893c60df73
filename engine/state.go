package engine

import (
	"fmt"
	"strings"
)

// State is the complete calculator state.
type State struct {
	// Display is both what the user sees and the current operand.
	Display string
	// Operand is the left-hand value captured by the last operator press.
	Operand float64
	// Op is the operation awaiting its right-hand value.
	Op Operation
}

// New returns the power-on state.
func New() State {
	return State{Display: "0"}
}

func (s State) String() string {
	return fmt.Sprintf("display=%q op=%s operand=%s", s.Display, s.Op, FormatNumber(s.Operand))
}

// Apply returns the state after pressing b.
func Apply(s State, b Button) State {
	switch b.Category() {
	case CategoryDigit:
		if len(s.Display) >= MaxDisplayLen {
			return s
		}
		if s.Display == "0" {
			s.Display = b.String()
		} else {
			s.Display += b.String()
		}

	case CategoryDecimal:
		if !strings.Contains(s.Display, ".") {
			s.Display += "."
		}

	case CategoryNegate:
		if strings.HasPrefix(s.Display, "-") {
			s.Display = s.Display[1:]
		} else {
			s.Display = "-" + s.Display
		}

	case CategoryPercent:
		s.Display = FormatNumber(ParseNumber(s.Display) / 100)

	case CategoryClear:
		s.Display = "0"

	case CategoryOperator:
		s.Op = b.Operation()
		s.Operand = ParseNumber(s.Display)
		s.Display = "0"

	case CategoryEquals:
		if v, ok := s.Op.Combine(s.Operand, ParseNumber(s.Display)); ok {
			s.Display = FormatNumber(v)
		}
	}
	return s
}

// Run applies the presses in order.
func Run(s State, presses ...Button) State {
	for _, b := range presses {
		s = Apply(s, b)
	}
	return s
}
