package systems

import (
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/physics"
)

// MotionSystem integrates all gameplay entities by the normalized delta
type MotionSystem struct{}

// NewMotionSystem creates the integrator stage
func NewMotionSystem() engine.System {
	return &MotionSystem{}
}

func (s *MotionSystem) Name() string  { return "motion" }
func (s *MotionSystem) Priority() int { return constants.PriorityMotion }

func (s *MotionSystem) Update(w *engine.World, tc *engine.TickContext) {
	physics.Items(w.Items, tc.DT)
	w.Projectiles = physics.Projectiles(w.Projectiles, tc.DT)
	w.BossProjectiles = physics.BossProjectiles(w.BossProjectiles, tc.DT)
	physics.Boss(w.Boss, tc.DT)
}
