package engine

// Operation is the operator waiting for its right-hand operand.
type Operation uint8

const (
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (op Operation) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Combine applies op to the running and current values.
//
// Division follows IEEE-754: x/0 is ±Inf and 0/0 is NaN. ok is false for
// OpNone, in which case no result exists.
func (op Operation) Combine(running, current float64) (result float64, ok bool) {
	switch op {
	case OpAdd:
		return running + current, true
	case OpSubtract:
		return running - current, true
	case OpMultiply:
		return running * current, true
	case OpDivide:
		return running / current, true
	default:
		return 0, false
	}
}
