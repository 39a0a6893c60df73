package app

import (
	"fmt"
	"strings"

	"calc/engine"
)

// recoverStep turns a panic inside one step into a logged reset. The state
// goes back to power-on and the display shows "Error" until the next press.
func (c *calculator) recoverStep(err *error) {
	v := recover()
	if v == nil {
		return
	}

	logf(c.log, "calc: panic: %v", v)
	for _, line := range strings.Split(string(stack()), "\n") {
		if line == "" {
			continue
		}
		logf(c.log, "%s", line)
	}

	c.state = engine.New()
	c.pressed = -1
	c.failed = true
	c.dirty = true

	defer func() {
		if v := recover(); v != nil {
			*err = fmt.Errorf("calc: panic while drawing error screen: %v", v)
		}
	}()
	c.redraw()
}
