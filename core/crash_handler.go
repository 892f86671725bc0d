package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// crashHandler is invoked on panic inside Go-spawned goroutines
// The binary injects a handler that restores the terminal before printing
var crashHandler = func(r any) {
	fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// SetCrashHandler replaces the default panic handler
// Call before any Go goroutine is spawned
func SetCrashHandler(fn func(r any)) {
	if fn != nil {
		crashHandler = fn
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so the frame driver cannot
// take the process down without cleanup.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crashHandler(r)
			}
		}()
		fn()
	}()
}
