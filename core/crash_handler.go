package core

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores a terminal to its pre-game state
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finisher
	exitFunc      = os.Exit
)

// RegisterTerminal records the screen restored by HandleCrash
func RegisterTerminal(t Finisher) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing to stderr
	if t != nil {
		t.Fini()
	}

	stack := debug.Stack()
	log.Printf("CRASH: %v\n%s", r, stack)

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	exitFunc(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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

// Recover swallows a panic at a loop boundary, logging it with the stack
// Must be called directly by defer; returns true through recovered when a panic was caught
func Recover(scope string, recovered *bool) {
	if r := recover(); r != nil {
		log.Printf("recovered panic in %s: %v\n%s", scope, r, debug.Stack())
		if recovered != nil {
			*recovered = true
		}
	}
}
