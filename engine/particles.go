package engine

import (
	"math"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/vmath"
)

// Burst describes a radial confetti explosion
type Burst struct {
	Count      int
	MinSpeed   float64
	SpeedRange float64
	Lift       float64 // Upward bias added to initial VY
	Life       float64
	LifeRange  float64
	MinDecay   float64
	DecayRange float64
	MinSize    float64
	SizeRange  float64
	Spin       float64 // Max rotation speed magnitude
}

var (
	// ItemBurst accompanies every resolved item
	ItemBurst = Burst{
		Count: constants.ConfettiPerBurst, MinSpeed: 0.2, SpeedRange: 0.4, Lift: 0.2,
		Life: 1.0, MinDecay: 0.015, DecayRange: 0.02, MinSize: 1, SizeRange: 1.5, Spin: 7.5,
	}

	// GameOverBurst is the long-lived celebration on game over
	GameOverBurst = Burst{
		Count: constants.GameOverConfetti, MinSpeed: 0.3, SpeedRange: 0.7, Lift: 0.5,
		Life: 2.0, LifeRange: 1.0, MinDecay: 0.005, DecayRange: 0.01, MinSize: 1.5, SizeRange: 2, Spin: 10,
	}
)

// SpawnConfetti emits a radial burst at (x, y) colored from palette
func (w *World) SpawnConfetti(x, y float64, b Burst, palette []string) {
	if len(palette) == 0 {
		palette = constants.PaletteDefault
	}
	for i := 0; i < b.Count; i++ {
		angle := w.Rand.Float64() * 2 * math.Pi
		speed := vmath.Range(w.Rand, b.MinSpeed, b.SpeedRange)
		w.Particles = append(w.Particles, component.Particle{
			ID:            w.NextID(),
			X:             x,
			Y:             y,
			VX:            math.Cos(angle) * speed,
			VY:            math.Sin(angle)*speed - b.Lift,
			Life:          vmath.Range(w.Rand, b.Life, b.LifeRange),
			Decay:         vmath.Range(w.Rand, b.MinDecay, b.DecayRange),
			Color:         palette[vmath.Pick(w.Rand, len(palette))],
			Size:          vmath.Range(w.Rand, b.MinSize, b.SizeRange),
			Kind:          component.ParticleConfetti,
			Rotation:      w.Rand.Float64() * 360,
			RotationSpeed: (w.Rand.Float64()*2 - 1) * b.Spin,
		})
	}
}

// SpawnText emits a floating status label drifting upward
func (w *World) SpawnText(x, y float64, text, color string, size, life, decay float64) {
	w.Particles = append(w.Particles, component.Particle{
		ID:    w.NextID(),
		X:     x,
		Y:     y,
		VY:    constants.TextParticleRise,
		Life:  life,
		Decay: decay,
		Color: color,
		Size:  size,
		Kind:  component.ParticleText,
		Text:  text,
	})
}

// PaletteFor returns the confetti colors for an item kind
func PaletteFor(kind component.ItemKind) []string {
	switch kind {
	case component.ItemGiftRed:
		return constants.PaletteGiftRed
	case component.ItemGiftGreen:
		return constants.PaletteGiftGreen
	case component.ItemSock:
		return constants.PaletteSock
	case component.ItemHeart:
		return constants.PaletteHeart
	case component.ItemGoldenTicket:
		return constants.PaletteTicket
	}
	return constants.PaletteDefault
}
