package fsm

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoTransition is returned when the active state has no passing transition for a trigger
	ErrNoTransition = errors.New("fsm: no transition")

	// ErrNotInitialized is returned when firing before Init
	ErrNotInitialized = errors.New("fsm: not initialized")
)

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		initial:   StateNone,
		active:    StateNone,
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// AddState adds a node to the machine, replacing any node with the same ID
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	return node
}

// AddTransition appends a transition to the source node
func (m *Machine[T]) AddTransition(from StateID, trigger Trigger, to StateID, guard GuardFunc[T]) error {
	node, ok := m.nodes[from]
	if !ok {
		return fmt.Errorf("source state %d not found", from)
	}
	if _, ok := m.nodes[to]; !ok {
		return fmt.Errorf("target state %d not found", to)
	}
	node.Transitions = append(node.Transitions, Transition[T]{Trigger: trigger, TargetID: to, Guard: guard})
	return nil
}

// SetInitial records the state entered by Init and Reset
func (m *Machine[T]) SetInitial(id StateID) {
	m.initial = id
}

// Init enters the initial state and runs its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initial]
	if !ok {
		return fmt.Errorf("initial state %d not found", m.initial)
	}
	m.active = node.ID
	m.timeInState = 0
	for _, fn := range node.OnEnter {
		fn(ctx, StateNone, node.ID)
	}
	return nil
}

// Current returns the active state
func (m *Machine[T]) Current() StateID {
	return m.active
}

// Name returns the configured name of a state
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return "unknown"
}

// Next resolves the target for a trigger without side effects
func (m *Machine[T]) Next(ctx T, trigger Trigger) (StateID, bool) {
	node, ok := m.nodes[m.active]
	if !ok {
		return StateNone, false
	}
	for _, tr := range node.Transitions {
		if tr.Trigger != trigger {
			continue
		}
		if tr.Guard == nil || tr.Guard(ctx) {
			return tr.TargetID, true
		}
	}
	return StateNone, false
}

// Fire applies a trigger: exit actions of the old state, then enter actions of the new one
// Returns the new state, or ErrNoTransition leaving the machine unchanged
func (m *Machine[T]) Fire(ctx T, trigger Trigger) (StateID, error) {
	if m.active == StateNone {
		return StateNone, ErrNotInitialized
	}
	target, ok := m.Next(ctx, trigger)
	if !ok {
		return m.active, fmt.Errorf("%w: %q from %s", ErrNoTransition, trigger, m.Name(m.active))
	}
	m.transition(ctx, target)
	return target, nil
}

// Can reports whether a trigger would transition from the active state
func (m *Machine[T]) Can(ctx T, trigger Trigger) bool {
	_, ok := m.Next(ctx, trigger)
	return ok
}

func (m *Machine[T]) transition(ctx T, target StateID) {
	from := m.active
	if node, ok := m.nodes[from]; ok {
		for _, fn := range node.OnExit {
			fn(ctx, from, target)
		}
	}

	m.active = target
	m.timeInState = 0

	if node, ok := m.nodes[target]; ok {
		for _, fn := range node.OnEnter {
			fn(ctx, from, target)
		}
	}
}

// Update accumulates time spent in the active state
func (m *Machine[T]) Update(dt time.Duration) {
	m.timeInState += dt
}

// TimeInState returns time accumulated since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// Reset re-enters the initial state, running exit actions of the active one
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.active]; ok {
		for _, fn := range node.OnExit {
			fn(ctx, m.active, m.initial)
		}
	}
	return m.Init(ctx)
}
