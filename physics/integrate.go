package physics

import (
	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/vmath"
)

// Normalize converts a wall delta in milliseconds to 60fps frame units
func Normalize(deltaMs float64) float64 {
	return deltaMs / constants.FrameMs
}

// Items advances falling items in place
// Culling is left to collision, which owns the off-screen miss rule
func Items(items []component.FallingItem, dt float64) {
	for i := range items {
		items[i].Y += items[i].Speed * dt * constants.ItemFallFactor
		items[i].Rotation += dt
	}
}

// Projectiles moves player shots up and culls those past the top edge
func Projectiles(ps []component.Projectile, dt float64) []component.Projectile {
	n := 0
	for i := range ps {
		ps[i].Y -= ps[i].Speed * dt
		if ps[i].Y < constants.ProjectileCullY {
			continue
		}
		ps[n] = ps[i]
		n++
	}
	return ps[:n]
}

// BossProjectiles moves boss shots down and culls those past the bottom edge
func BossProjectiles(ps []component.Projectile, dt float64) []component.Projectile {
	n := 0
	for i := range ps {
		ps[i].Y += ps[i].Speed * dt
		if ps[i].Y > constants.BossProjectileCullY {
			continue
		}
		ps[n] = ps[i]
		n++
	}
	return ps[:n]
}

// Particles integrates cosmetic particles and drops expired ones
func Particles(ps []component.Particle, dt float64) []component.Particle {
	n := 0
	for i := range ps {
		p := &ps[i]
		p.Life -= p.Decay * dt
		if !p.Alive() {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.Kind == component.ParticleConfetti {
			p.VY += constants.ParticleGravity * dt
			p.Rotation += p.RotationSpeed * dt
		}
		ps[n] = *p
		n++
	}
	return ps[:n]
}

// Boss patrols horizontally, reversing at the configured bounds
func Boss(b *component.Boss, dt float64) {
	if b == nil {
		return
	}
	b.X += b.Dir * b.Speed * dt
	if b.X <= constants.BossMinX {
		b.X = constants.BossMinX
		b.Dir = 1
	} else if b.X >= constants.BossMaxX {
		b.X = constants.BossMaxX
		b.Dir = -1
	}
}

// Player applies held directions at PlayerMoveRate percent per millisecond
func Player(p *component.Player, left, right bool, deltaMs float64) {
	var dx float64
	if left {
		dx -= constants.PlayerMoveRate * deltaMs
	}
	if right {
		dx += constants.PlayerMoveRate * deltaMs
	}
	if dx != 0 {
		p.Move(dx)
	}
	p.X = vmath.Clamp(p.X, 0, constants.GameWidth-constants.PlayerWidth)
}
