package engine

import (
	"sync/atomic"
	"time"
)

// Direction selects one of the two held movement signals
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Input holds the two "direction held" signals
// Written by the input goroutine, read once per tick by the loop
type Input struct {
	held  [2]atomic.Bool  // Pointer press-and-hold
	until [2]atomic.Int64 // Keyboard hold deadline, unix nanos, refreshed by key repeat
}

// NewInput creates a released input state
func NewInput() *Input {
	return &Input{}
}

// Hold sets or releases a pointer hold
func (in *Input) Hold(dir Direction, held bool) {
	in.held[dir].Store(held)
}

// Tap registers a key press that counts as held for window after now
// Terminals deliver repeats but no key-up, so the window bridges repeat gaps
func (in *Input) Tap(dir Direction, now time.Time, window time.Duration) {
	in.until[dir].Store(now.Add(window).UnixNano())
	// Opposite key cancels the other direction immediately
	in.until[1-dir].Store(0)
}

// Held reports whether dir is held at now
func (in *Input) Held(dir Direction, now time.Time) bool {
	return in.held[dir].Load() || now.UnixNano() < in.until[dir].Load()
}

// Release clears all holds
func (in *Input) Release() {
	for i := range in.held {
		in.held[i].Store(false)
		in.until[i].Store(0)
	}
}
