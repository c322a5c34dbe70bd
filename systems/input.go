package systems

import (
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/physics"
)

// InputSystem applies the held direction signals to the player
type InputSystem struct{}

// NewInputSystem creates the player movement system
func NewInputSystem() engine.System {
	return &InputSystem{}
}

func (s *InputSystem) Name() string  { return "input" }
func (s *InputSystem) Priority() int { return constants.PriorityInput }

func (s *InputSystem) Update(w *engine.World, tc *engine.TickContext) {
	physics.Player(&w.Player, tc.Left, tc.Right, tc.DeltaMs)
}
