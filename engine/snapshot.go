package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/festive-catch/component"
)

// Snapshot is a read-only projection of the World for one frame
// Slices are copies, the renderer may hold it across ticks
type Snapshot struct {
	Now   time.Time
	Frame int64
	Phase Phase
	Mode  SubMode

	Items           []component.FallingItem
	Projectiles     []component.Projectile
	BossProjectiles []component.Projectile
	Particles       []component.Particle
	Player          component.Player
	Boss            *component.Boss
	BossHit         bool

	Score     int
	Lives     int
	HighScore int
	Combo     int

	Shaking           bool
	ModeFlash         bool
	Celebrating       bool
	UltimateActive    bool
	UltimateRemaining time.Duration
	Notification      string

	RewardTier     string
	RewardFromBoss bool
}

// Snapshot projects the World at now
func (w *World) Snapshot(now time.Time) *Snapshot {
	s := &Snapshot{
		Now:             now,
		Frame:           w.Frame,
		Phase:           w.Phase,
		Mode:            w.Mode,
		Items:           slices.Clone(w.Items),
		Projectiles:     slices.Clone(w.Projectiles),
		BossProjectiles: slices.Clone(w.BossProjectiles),
		Particles:       slices.Clone(w.Particles),
		Player:          w.Player,
		Score:           w.Score,
		Lives:           w.Lives,
		HighScore:       w.HighScore,
		Combo:           w.Combo,
		Shaking:         w.Shake.Active(now),
		ModeFlash:       w.ModeFlash.Active(now),
		Celebrating:     w.Celebrate.Active(now),
		UltimateActive:  w.UltimateActive,
		RewardTier:      w.RewardTier,
		RewardFromBoss:  w.RewardFromBoss,
	}
	if w.UltimateActive {
		s.UltimateRemaining = w.Ultimate.Remaining(now)
	}
	if w.Notification.Active(now) {
		s.Notification = w.NotifyText
	}
	if w.Boss != nil {
		boss := *w.Boss
		s.Boss = &boss
		s.BossHit = boss.IsHit(now)
	}
	return s
}
