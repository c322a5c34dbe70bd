package engine

import (
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/event"
	"github.com/lixenwraith/festive-catch/vmath"
)

// World is the simulation arena, owned exclusively by the loop goroutine
// Renderers never see it directly, they receive a Snapshot
type World struct {
	// Entities, kept in spawn order
	Items           []component.FallingItem
	Projectiles     []component.Projectile
	BossProjectiles []component.Projectile
	Particles       []component.Particle
	Player          component.Player
	Boss            *component.Boss // nil outside boss battle

	// Session counters
	Score     int
	Lives     int
	HighScore int

	// StartLives is the lives count a fresh session begins with
	StartLives int

	Mode  SubMode
	Combo int // Consecutive red gifts caught in CATCH mode

	// Gain accumulates points earned this tick, applied once by scoring
	Gain int

	// Top-level phase mirror, updated by the phase machine
	Phase Phase

	// Spawn and fire timing
	LastSpawn     time.Time
	LastShot      time.Time
	LastSpawnedID component.Entity

	// Transient effects
	Shake          TimedFlag
	Notification   TimedFlag
	ModeFlash      TimedFlag
	Celebrate      TimedFlag
	Ultimate       TimedFlag
	UltimateActive bool
	NotifyText     string

	// Last unlocked reward, shown by the REWARD overlay
	RewardTier     string
	RewardFromBoss bool

	// Generation is bumped on every full reset
	Generation uint64
	Frame      int64

	Rand   vmath.Source
	Events *event.EventQueue

	nextID  component.Entity
	pending Action
	halted  bool
}

// NewWorld creates an empty arena at START
func NewWorld(rng vmath.Source, queue *event.EventQueue) *World {
	w := &World{
		Rand:       rng,
		Events:     queue,
		Phase:      PhaseStart,
		StartLives: constants.InitialLives,
	}
	w.Reset(time.Time{})
	return w
}

// Reset clears all mutable session state for a fresh game
// HighScore survives across sessions
func (w *World) Reset(now time.Time) {
	w.Items = w.Items[:0]
	w.Projectiles = w.Projectiles[:0]
	w.BossProjectiles = w.BossProjectiles[:0]
	w.Particles = w.Particles[:0]
	w.Player = component.NewPlayer()
	w.Boss = nil

	w.Score = 0
	w.Lives = vmath.ClampInt(w.StartLives, 1, constants.MaxLives)
	w.Mode = ModeCatch
	w.Combo = 0
	w.Gain = 0

	w.LastSpawn = time.Time{}
	w.LastShot = now
	w.LastSpawnedID = 0

	w.Shake.Clear()
	w.Notification.Clear()
	w.ModeFlash.Clear()
	w.Celebrate.Clear()
	w.Ultimate.Clear()
	w.UltimateActive = false
	w.NotifyText = ""

	w.RewardTier = ""
	w.RewardFromBoss = false

	w.pending = ""
	w.halted = false
	w.Generation++
}

// NextID returns a fresh entity ID, unique for the process lifetime
func (w *World) NextID() component.Entity {
	w.nextID++
	return w.nextID
}

// Emit queues an event stamped with the current frame
func (w *World) Emit(t event.EventType, payload any) {
	if w.Events != nil {
		w.Events.Emit(t, payload, w.Frame)
	}
}

// ClearField removes all items and projectiles
func (w *World) ClearField() {
	w.Items = w.Items[:0]
	w.Projectiles = w.Projectiles[:0]
	w.BossProjectiles = w.BossProjectiles[:0]
	w.LastSpawnedID = 0
}

// LastSpawned returns the most recently spawned item if still live
func (w *World) LastSpawned() (*component.FallingItem, bool) {
	if w.LastSpawnedID == 0 {
		return nil, false
	}
	for i := len(w.Items) - 1; i >= 0; i-- {
		if w.Items[i].ID == w.LastSpawnedID {
			return &w.Items[i], true
		}
	}
	return nil, false
}

// Trigger requests a phase transition and halts the rest of the tick
// The driver fires the action after the current system returns
func (w *World) Trigger(action Action) {
	w.pending = action
	w.halted = true
}

// Halted reports whether a system stopped the tick
func (w *World) Halted() bool {
	return w.halted
}

// AddLife restores one life up to the cap and returns the new count
func (w *World) AddLife() int {
	w.Lives = vmath.ClampInt(w.Lives+1, 0, constants.MaxLives)
	return w.Lives
}

// LoseLife removes one life and reports whether the game ended
func (w *World) LoseLife() bool {
	w.Lives = vmath.ClampInt(w.Lives-1, 0, constants.MaxLives)
	return w.Lives == 0
}

func (w *World) takePending() Action {
	a := w.pending
	w.pending = ""
	w.halted = false
	return a
}
