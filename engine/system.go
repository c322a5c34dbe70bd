package engine

import "time"

// TickContext carries per-tick inputs shared by all systems
type TickContext struct {
	Now     time.Time
	DeltaMs float64 // Wall delta since previous tick, capped
	DT      float64 // DeltaMs normalized to one 60fps frame
	Left    bool
	Right   bool
}

// System is one gameplay stage of the fixed tick pipeline
type System interface {
	// Name identifies the system in logs
	Name() string
	// Priority orders execution, lower values run first
	Priority() int
	// Update advances the system; calling World.Trigger halts the rest of the tick
	Update(w *World, tc *TickContext)
}
