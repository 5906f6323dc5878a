package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
// reset may be nil when no terminal was initialized
func HandleCrash(r any, reset func()) {
	if r == nil {
		return
	}

	if reset != nil {
		reset()
	}

	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSHIPWRIGHT CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}
