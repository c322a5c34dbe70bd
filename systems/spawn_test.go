package systems

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

var epoch = time.Date(2025, 12, 24, 19, 0, 0, 0, time.UTC)

func newTestWorld(vals ...float64) (*engine.World, *scriptedSource) {
	rng := &scriptedSource{vals: vals, fallback: 0.99}
	w := engine.NewWorld(rng, event.NewEventQueue(event.DefaultQueueSize))
	w.Reset(epoch)
	w.Phase = engine.PhasePlaying
	return w, rng
}

func TestSpawnItemFromScriptedRolls(t *testing.T) {
	// chance, size, x, kind, pick, speed, rotation
	w, _ := newTestWorld(0.01, 0.5, 0.5, 0.5, 0.0, 0.5, 0.5)
	NewSpawnSystem().Update(w, &engine.TickContext{Now: epoch})

	if len(w.Items) != 1 {
		t.Fatalf("Expected one item, got %d", len(w.Items))
	}
	it := w.Items[0]
	if it.Width != 8 || it.Points != 15 {
		t.Errorf("Expected size 8 worth 15, got size %f points %d", it.Width, it.Points)
	}
	if it.X != 46 {
		t.Errorf("Expected x=46, got %f", it.X)
	}
	if it.Kind != component.ItemGiftRed {
		t.Errorf("Expected gift-red, got %s", it.Kind)
	}
	if math.Abs(it.Speed-0.25) > 1e-9 || it.Rotation != 180 || it.Y != constants.ItemSpawnY {
		t.Errorf("Unexpected motion state %+v", it)
	}
	if !w.LastSpawn.Equal(epoch) || w.LastSpawnedID != it.ID {
		t.Error("Expected spawn bookkeeping updated")
	}
}

func TestSpawnGatedByDelayAndChance(t *testing.T) {
	w, rng := newTestWorld(0.5)
	sys := NewSpawnSystem()

	sys.Update(w, &engine.TickContext{Now: epoch})
	if len(w.Items) != 0 {
		t.Fatal("A roll above 5% must not spawn")
	}

	w.LastSpawn = epoch
	rng.vals, rng.i = []float64{0.0, 0.5, 0.5, 0.5, 0.0, 0.5, 0.5}, 0
	sys.Update(w, &engine.TickContext{Now: epoch.Add(500 * time.Millisecond)})
	if len(w.Items) != 0 || rng.i != 0 {
		t.Fatal("Spawn must wait for the minimum delay without rolling")
	}
	sys.Update(w, &engine.TickContext{Now: epoch.Add(801 * time.Millisecond)})
	if len(w.Items) != 1 {
		t.Fatal("Expected spawn once the delay elapsed")
	}
}

func TestSpawnClusterGuard(t *testing.T) {
	w, _ := newTestWorld(0.0, 0.5, 0.5, 0.5, 0.0, 0.5, 0.5)
	id := w.NextID()
	w.Items = append(w.Items, component.FallingItem{ID: id, X: 10, Y: 20, Width: 8})
	w.LastSpawnedID = id

	NewSpawnSystem().Update(w, &engine.TickContext{Now: epoch})
	if len(w.Items) != 2 {
		t.Fatal("Expected a second item")
	}
	// Range [0, 60] from last.x=10 +-50
	if got := w.Items[1].X; got != 30 {
		t.Errorf("Expected clustered x=30, got %f", got)
	}
}

func TestRollKind(t *testing.T) {
	tests := []struct {
		rolls []float64
		want  component.ItemKind
	}{
		{[]float64{0.005}, component.ItemGoldenTicket},
		{[]float64{0.03}, component.ItemHeart},
		{[]float64{0.05, 0.0}, component.ItemGiftRed},
		{[]float64{0.9, 0.999}, component.ItemGingerbread},
	}
	for _, tc := range tests {
		rng := &scriptedSource{vals: tc.rolls}
		if got := rollKind(rng); got != tc.want {
			t.Errorf("rolls %v: expected %s, got %s", tc.rolls, tc.want, got)
		}
	}
}

func TestSpawnDelayScalesWithLevel(t *testing.T) {
	if got := SpawnDelay(0); got != 800*time.Millisecond {
		t.Errorf("Expected 800ms at level 0, got %v", got)
	}
	base := float64(800 * time.Millisecond)
	if got := SpawnDelay(1000); got != time.Duration(base/1.5) {
		t.Errorf("Expected 533ms at level 2, got %v", got)
	}
	if got := SpeedMultiplier(1999); got != 1.75 {
		t.Errorf("Expected multiplier 1.75, got %f", got)
	}
}

func TestPlayerAutoFire(t *testing.T) {
	w, _ := newTestWorld()
	w.Mode = engine.ModeShoot
	sys := NewFireSystem()

	sys.Update(w, &engine.TickContext{Now: epoch.Add(299 * time.Millisecond)})
	if len(w.Projectiles) != 0 {
		t.Fatal("Fired before the 300ms interval")
	}
	sys.Update(w, &engine.TickContext{Now: epoch.Add(300 * time.Millisecond)})
	if len(w.Projectiles) != 1 {
		t.Fatal("Expected one projectile")
	}
	p := w.Projectiles[0]
	if want := w.Player.X + constants.PlayerWidth/2 - 1.5; p.X != want || p.Y != constants.PlayerY-5 {
		t.Errorf("Expected projectile at (%f, %f), got (%f, %f)", want, constants.PlayerY-5.0, p.X, p.Y)
	}

	w.Mode = engine.ModeCatch
	sys.Update(w, &engine.TickContext{Now: epoch.Add(time.Hour)})
	if len(w.Projectiles) != 1 {
		t.Error("CATCH mode must not fire")
	}
}

func TestBossAttackInterval(t *testing.T) {
	w, _ := newTestWorld()
	w.Phase = engine.PhaseBossBattle
	w.Boss = component.NewBoss(epoch)
	sys := NewFireSystem()

	sys.Update(w, &engine.TickContext{Now: epoch.Add(1999 * time.Millisecond)})
	if len(w.BossProjectiles) != 0 {
		t.Fatal("Full-HP boss must wait 2s")
	}
	sys.Update(w, &engine.TickContext{Now: epoch.Add(2 * time.Second)})
	if len(w.BossProjectiles) != 1 {
		t.Fatal("Expected boss shot at 2s")
	}

	w.Boss.HP = 50
	sys.Update(w, &engine.TickContext{Now: epoch.Add(3500 * time.Millisecond)})
	if len(w.BossProjectiles) != 2 {
		t.Error("Half-HP boss must attack every 1.5s")
	}
	if len(w.Projectiles) == 0 {
		t.Error("Player must auto-fire in boss battle")
	}
}
