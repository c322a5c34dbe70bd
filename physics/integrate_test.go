package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
)

const epsilon = 1e-9

func TestNormalize(t *testing.T) {
	if got := Normalize(constants.FrameMs); math.Abs(got-1) > epsilon {
		t.Errorf("Expected 1 frame, got %f", got)
	}
	if got := Normalize(0); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
}

func TestItemsFall(t *testing.T) {
	items := []component.FallingItem{{Y: -15, Speed: 0.2}}
	Items(items, 2)
	want := -15 + 0.2*2*1.5
	if math.Abs(items[0].Y-want) > epsilon {
		t.Errorf("Expected y=%f, got %f", want, items[0].Y)
	}
	if items[0].Rotation != 2 {
		t.Errorf("Expected rotation 2, got %f", items[0].Rotation)
	}
}

func TestProjectileCulling(t *testing.T) {
	ps := []component.Projectile{
		{ID: 1, Y: 50, Speed: 0.8},
		{ID: 2, Y: -4.5, Speed: 0.8},
		{ID: 3, Y: 10, Speed: 0.8},
	}
	ps = Projectiles(ps, 1)
	if len(ps) != 2 || ps[0].ID != 1 || ps[1].ID != 3 {
		t.Fatalf("Expected projectiles 1 and 3 to survive in order, got %+v", ps)
	}
	if math.Abs(ps[0].Y-49.2) > epsilon {
		t.Errorf("Expected y=49.2, got %f", ps[0].Y)
	}
}

func TestBossProjectileCulling(t *testing.T) {
	ps := []component.Projectile{
		{ID: 1, Y: 99.8, Speed: 0.6},
		{ID: 2, Y: 20, Speed: 0.6},
	}
	ps = BossProjectiles(ps, 1)
	if len(ps) != 1 || ps[0].ID != 2 {
		t.Fatalf("Expected only projectile 2 to survive, got %+v", ps)
	}
}

func TestParticles(t *testing.T) {
	ps := []component.Particle{
		{ID: 1, Kind: component.ParticleConfetti, Life: 1, Decay: 0.1, VX: 1, VY: -1, RotationSpeed: 5},
		{ID: 2, Kind: component.ParticleText, Life: 0.01, Decay: 0.02, VY: -0.1},
		{ID: 3, Kind: component.ParticleText, Life: 1, Decay: 0.02, VY: -0.1},
	}
	ps = Particles(ps, 1)
	if len(ps) != 2 {
		t.Fatalf("Expected expired text particle culled, got %d particles", len(ps))
	}

	c := ps[0]
	if math.Abs(c.Life-0.9) > epsilon || c.X != 1 || c.Y != -1 {
		t.Errorf("Unexpected confetti state %+v", c)
	}
	if math.Abs(c.VY-(-1+constants.ParticleGravity)) > epsilon {
		t.Errorf("Expected gravity applied, vy=%f", c.VY)
	}
	if c.Rotation != 5 {
		t.Errorf("Expected rotation 5, got %f", c.Rotation)
	}

	txt := ps[1]
	if txt.VY != -0.1 {
		t.Errorf("Text particle must not accumulate gravity, vy=%f", txt.VY)
	}

	// Culled particles never come back
	ps = Particles(ps, 0)
	for _, p := range ps {
		if p.ID == 2 {
			t.Error("Removed particle reappeared")
		}
	}
}

func TestBossPatrolBounces(t *testing.T) {
	b := &component.Boss{X: constants.BossMaxX - 0.1, Dir: 1, Speed: 1}
	Boss(b, 1)
	if b.X != constants.BossMaxX || b.Dir != -1 {
		t.Errorf("Expected clamp to max and reverse, got x=%f dir=%f", b.X, b.Dir)
	}

	b = &component.Boss{X: constants.BossMinX + 0.1, Dir: -1, Speed: 1}
	Boss(b, 1)
	if b.X != constants.BossMinX || b.Dir != 1 {
		t.Errorf("Expected clamp to min and reverse, got x=%f dir=%f", b.X, b.Dir)
	}

	Boss(nil, 1)
}

func TestPlayerMovement(t *testing.T) {
	p := component.NewPlayer()
	start := p.X
	Player(&p, true, false, 100)
	if math.Abs(p.X-(start-8)) > epsilon {
		t.Errorf("Expected x=%f, got %f", start-8, p.X)
	}

	Player(&p, true, true, 100)
	if math.Abs(p.X-(start-8)) > epsilon {
		t.Errorf("Opposite holds should cancel, got %f", p.X)
	}

	Player(&p, false, true, 10000)
	if p.X != constants.GameWidth-constants.PlayerWidth {
		t.Errorf("Expected clamp to right edge, got %f", p.X)
	}
}
