package systems

import (
	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// FireSystem handles auto-fire for the player and the boss
type FireSystem struct{}

// NewFireSystem creates the auto-fire system
func NewFireSystem() engine.System {
	return &FireSystem{}
}

func (s *FireSystem) Name() string  { return "fire" }
func (s *FireSystem) Priority() int { return constants.PriorityFire }

func (s *FireSystem) Update(w *engine.World, tc *engine.TickContext) {
	boss := w.Phase == engine.PhaseBossBattle

	// Player fires in SHOOT sub-mode and during boss battles
	if boss || w.Mode == engine.ModeShoot {
		interval := constants.ShootInterval
		if boss {
			interval = constants.BossShootInterval
		}
		if tc.Now.Sub(w.LastShot) >= interval {
			pb := w.Player.Bounds()
			w.Projectiles = append(w.Projectiles, component.Projectile{
				ID:     w.NextID(),
				X:      pb.CenterX() - constants.ProjectileSize/2,
				Y:      pb.Y - 5,
				Width:  constants.ProjectileSize,
				Height: constants.ProjectileSize,
				Speed:  constants.ProjectileSpeed,
			})
			w.LastShot = tc.Now
			w.Emit(event.EventShoot, nil)
		}
	}

	if !boss || w.Boss == nil || w.Boss.Defeated() {
		return
	}
	b := w.Boss
	if tc.Now.Sub(b.LastAttack) >= b.AttackInterval() {
		bb := b.Bounds()
		w.BossProjectiles = append(w.BossProjectiles, component.Projectile{
			ID:     w.NextID(),
			X:      bb.CenterX() - constants.BossProjectileSize/2,
			Y:      bb.Y + bb.H,
			Width:  constants.BossProjectileSize,
			Height: constants.BossProjectileSize,
			Speed:  constants.BossProjectileSpeed,
		})
		b.LastAttack = tc.Now
		w.Emit(event.EventBossShoot, nil)
	}
}
