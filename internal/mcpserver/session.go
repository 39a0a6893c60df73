// Package mcpserver exposes one calculator session over the Model Context
// Protocol, so agents can drive the keypad the way a user would.
package mcpserver

import (
	"sync"

	"calc/engine"
)

// Session is a calculator shared by every request on one server.
type Session struct {
	mu    sync.Mutex
	state engine.State
}

// NewSession returns a session in the power-on state.
func NewSession() *Session {
	return &Session{state: engine.New()}
}

// Press applies buttons in order and returns the resulting state.
func (s *Session) Press(buttons ...engine.Button) engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = engine.Run(s.state, buttons...)
	return s.state
}

// State returns the current state.
func (s *Session) State() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset returns the session to the power-on state. Unlike AC this also
// forgets the pending operation.
func (s *Session) Reset() engine.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = engine.New()
	return s.state
}

// Report is the JSON shape returned by every tool.
type Report struct {
	Display   string `json:"display"`
	Shown     string `json:"shown"`
	Operation string `json:"operation"`
	Operand   string `json:"operand"`
}

func reportOf(st engine.State) Report {
	return Report{
		Display:   st.Display,
		Shown:     engine.DisplayText(st.Display),
		Operation: st.Op.String(),
		Operand:   engine.FormatNumber(st.Operand),
	}
}
