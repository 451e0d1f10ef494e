package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashRestore atomic.Pointer[func()]

// SetCrashRestore registers the terminal teardown run before a crash report
// The tcell host registers screen.Fini once the screen is up
func SetCrashRestore(fn func()) {
	if fn == nil {
		crashRestore.Store(nil)
		return
	}
	crashRestore.Store(&fn)
}

// HandleCrash restores the terminal and prints the stack trace, then exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashRestore.Load(); fn != nil {
		(*fn)()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the go keyword for goroutines that outlive a frame
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
