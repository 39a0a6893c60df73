// Package engine implements the calculator's button-driven state machine.
//
// The engine is a pure fold over button presses: Apply takes the current
// State and one Button and returns the next State. It never fails and never
// performs I/O; the caller owns the mutable cell that holds the current State.
//
// Arithmetic is a running left-to-right accumulator. An operator button
// captures the display as the pending operand; "=" combines the pending
// operand with the display using the pending operation. Neither "=" nor "AC"
// clears the pending operation, so repeated "=" presses re-apply it to the
// freshly produced display.
package engine
