package component

// ParticleKind selects the particle integration rule
type ParticleKind uint8

const (
	// ParticleText is floating score/status text
	ParticleText ParticleKind = iota
	// ParticleConfetti is a spinning fragment under gravity
	ParticleConfetti
)

// Particle is purely cosmetic and never affects gameplay
type Particle struct {
	ID            Entity
	X, Y          float64
	VX, VY        float64
	Life          float64 // Starts at 1.0 (longer for special bursts), removed at <= 0
	Decay         float64 // Life lost per normalized frame
	Color         string  // Hex color
	Size          float64
	Kind          ParticleKind
	Text          string
	Rotation      float64
	RotationSpeed float64
}

// Alive reports whether the particle still has life left
func (p *Particle) Alive() bool {
	return p.Life > 0
}
