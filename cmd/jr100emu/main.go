// Command jr100emu runs a headless JR-100 emulation core: load a program,
// run it for a fixed number of cycles, and optionally dump machine state.
// It replaces the teacher's pixelgl-driven main.go -- there is no window
// here, since rendering/input are front-end concerns this core does not own.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
