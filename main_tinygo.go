//go:build tinygo && baremetal

package main

import (
	"ledtris/app"
	"ledtris/hal"
)

func main() {
	app.Run(hal.New())
}
