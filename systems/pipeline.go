package systems

import "github.com/lixenwraith/festive-catch/engine"

// DefaultPipeline returns every gameplay system in tick order
func DefaultPipeline() []engine.System {
	return []engine.System{
		NewModeSystem(),
		NewInputSystem(),
		NewSpawnSystem(),
		NewFireSystem(),
		NewMotionSystem(),
		NewCollisionSystem(),
		NewBossSystem(),
		NewScoreSystem(),
	}
}
