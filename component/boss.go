package component

import (
	"time"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/vmath"
)

// Boss is the single adversary of the boss battle
type Boss struct {
	X, Y          float64
	Width, Height float64
	Dir           float64 // +1 moving right, -1 moving left
	Speed         float64
	HP            int
	HitUntil      time.Time // Transient HIT flag deadline
	LastAttack    time.Time
}

// NewBoss creates a full-HP boss at the top centre
func NewBoss(now time.Time) *Boss {
	return &Boss{
		X:          (constants.GameWidth - constants.BossWidth) / 2,
		Y:          constants.BossY,
		Width:      constants.BossWidth,
		Height:     constants.BossHeight,
		Dir:        1,
		Speed:      constants.BossSpeed,
		HP:         constants.BossMaxHP,
		LastAttack: now,
	}
}

// Bounds returns the boss hitbox
func (b *Boss) Bounds() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Defeated reports whether HP is depleted
func (b *Boss) Defeated() bool {
	return b.HP <= 0
}

// IsHit reports whether the HIT flag is showing at now
func (b *Boss) IsHit(now time.Time) bool {
	return now.Before(b.HitUntil)
}

// TakeHit applies one projectile hit, flooring HP at zero
func (b *Boss) TakeHit(now time.Time) {
	b.HP = vmath.ClampInt(b.HP-constants.BossHitDamage, 0, constants.BossMaxHP)
	b.HitUntil = now.Add(constants.BossHitFlash)
}

// AttackInterval shrinks from 2x base at full HP toward base as HP depletes
func (b *Boss) AttackInterval() time.Duration {
	hp := vmath.ClampInt(b.HP, 0, constants.BossMaxHP)
	return constants.BossAttackBase + constants.BossAttackBase*time.Duration(hp)/constants.BossMaxHP
}
