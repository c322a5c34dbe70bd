package fsm

import "time"

// StateID is a unique identifier for a node, assigned by the owner of the machine
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = -1

// Trigger names an external action that may cause a transition
type Trigger string

// Machine is a flat finite state machine with event-keyed transitions
// T is the context type passed to actions and guards (e.g., *engine.World)
type Machine[T any] struct {
	// Graph data, immutable after load
	nodes   map[StateID]*Node[T]
	initial StateID

	// Runtime state
	active      StateID
	timeInState time.Duration

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	Trigger  Trigger
	TargetID StateID
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect on enter or exit
type ActionFunc[T any] func(ctx T, from, to StateID)
