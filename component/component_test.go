package component

import (
	"testing"
	"time"

	"github.com/lixenwraith/festive-catch/constants"
)

func TestPointsForSize(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{6, 20},
		{7, 18},
		{8, 15},
		{9.9, 10},
		{10, 10},
		{14, 10},
		{2, 20},
	}
	for _, tt := range tests {
		if got := PointsForSize(tt.size); got != tt.want {
			t.Errorf("PointsForSize(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestItemKindClassification(t *testing.T) {
	for _, k := range OrdinaryKinds {
		if !k.IsOrdinary() {
			t.Errorf("%s should be ordinary", k)
		}
	}
	if ItemHeart.IsOrdinary() || ItemGoldenTicket.IsOrdinary() {
		t.Error("heart and golden ticket must not be ordinary")
	}
	if ItemGoldenTicket.String() != "golden-ticket" {
		t.Errorf("unexpected name %q", ItemGoldenTicket.String())
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	p := NewPlayer()
	p.Move(-1000)
	if p.X != 0 {
		t.Errorf("Expected left clamp at 0, got %v", p.X)
	}
	p.Move(1000)
	if p.X != constants.GameWidth-constants.PlayerWidth {
		t.Errorf("Expected right clamp at %v, got %v", constants.GameWidth-constants.PlayerWidth, p.X)
	}
}

func TestBossTakeHitFloorsAtZero(t *testing.T) {
	now := time.Unix(0, 0)
	b := NewBoss(now)
	b.HP = 1
	b.TakeHit(now)
	if b.HP != 0 {
		t.Errorf("Expected HP 0, got %d", b.HP)
	}
	if !b.Defeated() {
		t.Error("Boss at 0 HP must be defeated")
	}
	if !b.IsHit(now) {
		t.Error("HIT flag should show right after a hit")
	}
	if b.IsHit(now.Add(constants.BossHitFlash)) {
		t.Error("HIT flag should clear after the flash duration")
	}
}

func TestBossAttackIntervalShrinks(t *testing.T) {
	b := NewBoss(time.Unix(0, 0))
	full := b.AttackInterval()
	b.HP = 10
	low := b.AttackInterval()
	if full != 2*constants.BossAttackBase {
		t.Errorf("Full HP interval = %v", full)
	}
	if low >= full || low < constants.BossAttackBase {
		t.Errorf("Low HP interval %v not in [%v, %v)", low, constants.BossAttackBase, full)
	}
}

func TestItemOffScreen(t *testing.T) {
	it := FallingItem{Y: constants.ItemCullY}
	if it.OffScreen() {
		t.Error("Item exactly at cull line is still on screen")
	}
	it.Y += 0.01
	if !it.OffScreen() {
		t.Error("Item past cull line must be off screen")
	}
}
