package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

const frame = 16 * time.Millisecond

// Scenario A: four red gifts build the combo, the fifth fires it
func TestScenarioComboRedGifts(t *testing.T) {
	h := newHarness(t)
	h.mustStart()
	h.tick(0)

	for i := 0; i < 4; i++ {
		h.itemOnPlayer(component.ItemGiftRed, 8)
		h.tick(frame)
	}
	if h.world.Score != 60 {
		t.Errorf("Expected score 60, got %d", h.world.Score)
	}
	if h.world.Combo != 4 {
		t.Errorf("Expected combo 4, got %d", h.world.Combo)
	}
	if n := h.count(event.EventCombo); n != 0 {
		t.Errorf("Expected no combo event yet, got %d", n)
	}

	h.itemOnPlayer(component.ItemGiftRed, 8)
	h.tick(frame)
	if h.world.Score != 75 {
		t.Errorf("Expected score 75, got %d", h.world.Score)
	}
	if h.world.Combo != 0 {
		t.Errorf("Expected combo reset to 0, got %d", h.world.Combo)
	}
	if n := h.count(event.EventCombo); n != 1 {
		t.Errorf("Expected exactly one combo event, got %d", n)
	}
	if !h.game.Snapshot().Celebrating {
		t.Error("Expected celebrate flag after combo")
	}
	if n := h.count(event.EventCatch); n != 5 {
		t.Errorf("Expected 5 catch events, got %d", n)
	}
}

// Scenario B: crossing 500 flips to SHOOT and unlocks the 5K reward in one tick
func TestScenarioFirstMilestone(t *testing.T) {
	h := newHarness(t)
	h.mustStart()
	h.tick(0)
	h.world.Score = 490

	h.itemOnPlayer(component.ItemGiftRed, 8)
	h.itemAt(component.ItemSock, 60, 10, 8)
	h.tick(frame)

	if h.world.Score != 505 {
		t.Errorf("Expected score 505, got %d", h.world.Score)
	}
	if h.world.Mode != engine.ModeShoot {
		t.Errorf("Expected SHOOT mode, got %s", h.world.Mode)
	}
	if len(h.world.Items) != 0 || len(h.world.Projectiles) != 0 {
		t.Errorf("Mode switch must clear the field, got %d items %d projectiles", len(h.world.Items), len(h.world.Projectiles))
	}
	if h.game.Phase() != engine.PhaseReward {
		t.Fatalf("Expected REWARD, got %s", h.game.Phase())
	}
	if h.world.RewardTier != "5K" {
		t.Errorf("Expected tier 5K, got %q", h.world.RewardTier)
	}
	ev, ok := h.last(event.EventReward)
	if !ok {
		t.Fatal("Expected reward event")
	}
	if p := ev.Payload.(*event.RewardPayload); p.Tier != "5K" || p.Milestone != 1 {
		t.Errorf("Unexpected reward payload %+v", p)
	}
	if h.count(event.EventModeSwitch) != 1 {
		t.Errorf("Expected one mode switch event, got %d", h.count(event.EventModeSwitch))
	}
	if h.game.Snapshot().Notification != constants.NotifyShoot {
		t.Errorf("Expected shoot notification, got %q", h.game.Snapshot().Notification)
	}
}

// Scenario C: an unshot item reaching the player in SHOOT mode costs a life
func TestScenarioShootModeDamage(t *testing.T) {
	h := newHarness(t)
	h.mustStart()
	h.world.Score = 500
	h.world.Mode = engine.ModeShoot
	h.tick(0)

	h.itemOnPlayer(component.ItemGingerbread, 8)
	h.tick(frame)

	if h.world.Lives != constants.InitialLives-1 {
		t.Errorf("Expected %d lives, got %d", constants.InitialLives-1, h.world.Lives)
	}
	if h.world.Score != 500 {
		t.Errorf("Score must not change, got %d", h.world.Score)
	}
	if !h.game.Snapshot().Shaking {
		t.Error("Expected shake flag after damage")
	}
	if h.count(event.EventMiss) != 1 {
		t.Errorf("Expected one miss event, got %d", h.count(event.EventMiss))
	}

	h.tick(constants.ShakeDuration)
	if h.game.Snapshot().Shaking {
		t.Error("Expected shake flag cleared after 300ms")
	}
}

// Scenario D: the final hit on the boss awards the diamond box
func TestScenarioBossDefeat(t *testing.T) {
	h := newHarness(t)
	if err := h.game.StartBoss(); err != nil {
		t.Fatal(err)
	}
	h.tick(0)

	boss := h.world.Boss
	boss.HP = 2
	bb := boss.Bounds()
	h.world.Projectiles = append(h.world.Projectiles,
		component.Projectile{ID: h.world.NextID(), X: bb.CenterX(), Y: bb.Y + 2, Width: 3, Height: 3, Speed: 0.8},
		component.Projectile{ID: h.world.NextID(), X: bb.CenterX(), Y: bb.Y + 4, Width: 3, Height: 3, Speed: 0.8},
	)
	before := h.world.Score
	h.tick(frame)

	if boss.HP != 0 {
		t.Errorf("Expected HP clamped to 0, got %d", boss.HP)
	}
	if h.game.Phase() != engine.PhaseReward {
		t.Fatalf("Expected REWARD, got %s", h.game.Phase())
	}
	if h.world.RewardTier != "HỘP QUÀ KIM CƯƠNG" {
		t.Errorf("Expected diamond box tier, got %q", h.world.RewardTier)
	}
	if h.world.Score-before != 5000 {
		t.Errorf("Expected +5000, got %+d", h.world.Score-before)
	}
	if h.count(event.EventBossHit) != 1 {
		t.Errorf("Only one projectile may land on a defeated boss, got %d hits", h.count(event.EventBossHit))
	}
	if h.count(event.EventBossDefeated) != 1 || h.count(event.EventReward) != 1 {
		t.Error("Expected boss defeat and reward exactly once")
	}

	// Resuming the boss prize returns to the menu
	if err := h.game.Resume(); err != nil {
		t.Fatal(err)
	}
	if h.game.Phase() != engine.PhaseStart {
		t.Errorf("Expected START after boss prize, got %s", h.game.Phase())
	}
}
