package component

import "github.com/lixenwraith/festive-catch/vmath"

// Projectile is a player or boss shot moving along the vertical axis
// Player shots travel up, boss shots travel down; the owning list decides direction
type Projectile struct {
	ID            Entity
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Bounds returns the projectile hitbox
func (p *Projectile) Bounds() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
