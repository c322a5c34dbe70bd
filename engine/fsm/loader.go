package fsm

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	OnEnter     []string           `toml:"on_enter,omitempty"`
	OnExit      []string           `toml:"on_exit,omitempty"`
	Transitions []TransitionConfig `toml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger string `toml:"trigger"`
	Target  string `toml:"target"`
	Guard   string `toml:"guard,omitempty"`
}

// LoadConfig parses a TOML graph and populates the Machine
// ids maps every state name in the config to the owner's StateID
// Guards and actions must be registered before loading; unknown references fail the load
func (m *Machine[T]) LoadConfig(data []byte, ids map[string]StateID) error {
	var config RootConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.active = StateNone

	// First pass: nodes
	for name := range config.States {
		id, ok := ids[name]
		if !ok {
			return fmt.Errorf("state '%s' has no registered ID", name)
		}
		m.AddState(id, name)
	}

	// Second pass: actions and transitions
	for name, cfg := range config.States {
		node := m.nodes[ids[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}

		for _, tc := range cfg.Transitions {
			target, ok := ids[tc.Target]
			if !ok {
				return fmt.Errorf("state '%s' transition references unknown target '%s'", name, tc.Target)
			}
			if _, ok := m.nodes[target]; !ok {
				return fmt.Errorf("state '%s' transition target '%s' is not declared", name, tc.Target)
			}
			var guard GuardFunc[T]
			if tc.Guard != "" {
				if guard, ok = m.guardReg[tc.Guard]; !ok {
					return fmt.Errorf("state '%s' references unknown guard '%s'", name, tc.Guard)
				}
			}
			node.Transitions = append(node.Transitions, Transition[T]{
				Trigger:  Trigger(tc.Trigger),
				TargetID: target,
				Guard:    guard,
			})
		}
	}

	initial, ok := ids[config.InitialState]
	if !ok {
		return fmt.Errorf("unknown initial state '%s'", config.InitialState)
	}
	if _, ok := m.nodes[initial]; !ok {
		return fmt.Errorf("initial state '%s' is not declared", config.InitialState)
	}
	m.initial = initial

	return nil
}

func (m *Machine[T]) compileActions(names []string) ([]ActionFunc[T], error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]ActionFunc[T], 0, len(names))
	for _, name := range names {
		fn, ok := m.actionReg[name]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s'", name)
		}
		out = append(out, fn)
	}
	return out, nil
}
