package component

import (
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/vmath"
)

// Player is the catcher at the bottom of the playfield
type Player struct {
	X float64 // Left edge, clamped to [0, GameWidth-PlayerWidth]
}

// NewPlayer centres the player
func NewPlayer() Player {
	return Player{X: (constants.GameWidth - constants.PlayerWidth) / 2}
}

// Bounds returns the fixed-height hitbox
func (p Player) Bounds() vmath.Rect {
	return vmath.Rect{X: p.X, Y: constants.PlayerY, W: constants.PlayerWidth, H: constants.PlayerHeight}
}

// Move shifts the player by dx and clamps to the playfield
func (p *Player) Move(dx float64) {
	p.X = vmath.Clamp(p.X+dx, 0, constants.GameWidth-constants.PlayerWidth)
}
