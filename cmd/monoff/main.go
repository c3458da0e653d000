// Package main is the entry point for monoff.
//
// Build with -ldflags "-H windowsgui" so that starting monoff from Explorer
// does not open a console window.
package main

import (
	"os"
)

func main() {
	os.Exit(Execute())
}
