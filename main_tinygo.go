//go:build tinygo || periph

package main

import (
	"bitdog/app"
	"bitdog/hal"
)

func main() {
	app.Run(hal.New())
}
