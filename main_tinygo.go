//go:build tinygo

package main

import (
	"calc/app"
	"calc/hal"
)

func main() {
	app.Run(hal.New())
}
