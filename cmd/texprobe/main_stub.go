//go:build !windows

// Command texprobe exercises the shared texture pipeline end to end.
// Shared Direct3D textures only exist on Windows; elsewhere it can
// only say so.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "texprobe: shared Direct3D textures require Windows")
	os.Exit(1)
}
