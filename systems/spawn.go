package systems

import (
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/vmath"
)

// SpawnSystem drops new falling items on a delay-gated stochastic cadence
//
// Random draws per spawn, in order: chance, size, x, kind, ordinary pick (ordinary only), speed, rotation
type SpawnSystem struct{}

// NewSpawnSystem creates the item spawner
func NewSpawnSystem() engine.System {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Name() string  { return "spawn" }
func (s *SpawnSystem) Priority() int { return constants.PrioritySpawn }

// SpeedMultiplier returns the difficulty multiplier for a score
func SpeedMultiplier(score int) float64 {
	return 1 + float64(engine.Level(score))*constants.LevelSpeedStep
}

// SpawnDelay returns the minimum time between spawns for a score
func SpawnDelay(score int) time.Duration {
	return time.Duration(float64(constants.SpawnBaseDelay) / SpeedMultiplier(score))
}

func (s *SpawnSystem) Update(w *engine.World, tc *engine.TickContext) {
	if !w.LastSpawn.IsZero() && tc.Now.Sub(w.LastSpawn) <= SpawnDelay(w.Score) {
		return
	}
	if w.Rand.Float64() >= constants.SpawnChance {
		return
	}
	w.Items = append(w.Items, newItem(w))
	w.LastSpawnedID = w.Items[len(w.Items)-1].ID
	w.LastSpawn = tc.Now
}

func newItem(w *engine.World) component.FallingItem {
	rng := w.Rand
	size := vmath.Range(rng, constants.ItemMinSize, constants.ItemSizeRange)

	// Keep a new item reachable from the previous one while that one is still high
	minX, maxX := 0.0, constants.GameWidth-size
	if last, ok := w.LastSpawned(); ok && last.Y < constants.ClusterGuardY {
		minX = max(0, last.X-constants.ClusterSpread)
		maxX = min(constants.GameWidth-size, last.X+constants.ClusterSpread)
	}
	x := minX + rng.Float64()*(maxX-minX)

	return component.FallingItem{
		ID:       w.NextID(),
		X:        x,
		Y:        constants.ItemSpawnY,
		Width:    size,
		Kind:     rollKind(rng),
		Points:   component.PointsForSize(size),
		Speed:    vmath.Range(rng, constants.ItemMinSpeed, constants.ItemSpeedRange) * SpeedMultiplier(w.Score),
		Rotation: rng.Float64() * 360,
	}
}

// rollKind maps a uniform roll to the kind distribution: 1% ticket, 4% heart, rest ordinary
func rollKind(rng vmath.Source) component.ItemKind {
	r := rng.Float64()
	switch {
	case r < constants.SpecialChance:
		return component.ItemGoldenTicket
	case r < constants.HeartChance:
		return component.ItemHeart
	}
	return component.OrdinaryKinds[vmath.Pick(rng, len(component.OrdinaryKinds))]
}
