//go:build tinygo

package app

// TinyGo cannot unwind goroutine stacks.
func stack() []byte { return nil }
