// Command mvprune reports which target-specific clones of a function are
// substantially the same as their baseline and can be pruned.
package main

import (
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	cmd := newRootCmd()
	cmd.SetOut(os.Stdout)

	if err := cmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
