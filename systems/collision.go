package systems

import (
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// CollisionSystem resolves overlaps between the player, items, projectiles and the boss
//
// Items are resolved in list order with mark-then-compact removal:
//  1. player vs item, short-circuits the item
//  2. projectile vs item when shooting, first live projectile in list order is consumed
//  3. off-screen cull with the CATCH-mode miss penalty
//
// Boss projectiles vs player and player projectiles vs boss follow
// Reaching zero lives stops the tick and requests GAME_OVER
type CollisionSystem struct {
	itemGone []bool
	projGone []bool
}

// NewCollisionSystem creates the collision resolver
func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string  { return "collision" }
func (s *CollisionSystem) Priority() int { return constants.PriorityCollision }

// outcome of resolving one item
type outcome uint8

const (
	outcomeNone outcome = iota
	outcomeRemoved
	outcomeDead
	outcomeUltimate
)

func (s *CollisionSystem) Update(w *engine.World, tc *engine.TickContext) {
	s.itemGone = resetMarks(s.itemGone, len(w.Items))
	s.projGone = resetMarks(s.projGone, len(w.Projectiles))

	switch s.resolveItems(w, tc.Now) {
	case outcomeDead:
		s.compact(w)
		w.Trigger(engine.ActionDie)
		return
	case outcomeUltimate:
		// Field already cleared
	default:
		s.compact(w)
	}

	if w.Phase != engine.PhaseBossBattle {
		return
	}
	if s.bossShots(w, tc.Now) {
		w.Trigger(engine.ActionDie)
		return
	}
	s.playerShots(w, tc.Now)
}

func (s *CollisionSystem) resolveItems(w *engine.World, now time.Time) outcome {
	player := w.Player.Bounds()
	shooting := w.Mode == engine.ModeShoot || w.Phase == engine.PhaseBossBattle

	for i := range w.Items {
		it := &w.Items[i]
		var res outcome

		switch {
		case player.Overlaps(it.Bounds()):
			res = s.playerHit(w, it, i, shooting, now)
		case shooting && s.consumeProjectile(w, it):
			res = s.shotHit(w, it, i, now)
		case it.OffScreen():
			res = outcomeRemoved
			if it.Kind.IsOrdinary() && !shooting && damagePlayer(w, now) {
				res = outcomeDead
			}
		}

		if res == outcomeNone {
			continue
		}
		if res == outcomeUltimate {
			return res
		}
		s.itemGone[i] = true
		if res == outcomeDead {
			return res
		}
	}
	return outcomeNone
}

// playerHit applies the outcome table for a player overlap
func (s *CollisionSystem) playerHit(w *engine.World, it *component.FallingItem, idx int, shooting bool, now time.Time) outcome {
	switch {
	case it.Kind == component.ItemGoldenTicket:
		if !shooting {
			w.Combo = 0
		}
		s.itemGone[idx] = true
		TriggerUltimate(w, now, s.itemGone)
		return outcomeUltimate
	case it.Kind == component.ItemHeart:
		if !shooting {
			w.Combo = 0
		}
		restoreLife(w, it)
	case shooting:
		if damagePlayer(w, now) {
			return outcomeDead
		}
	default:
		awardItem(w, it, false)
		trackCombo(w, it.Kind, now)
	}
	return outcomeRemoved
}

// shotHit applies the outcome table for a projectile hit
func (s *CollisionSystem) shotHit(w *engine.World, it *component.FallingItem, idx int, now time.Time) outcome {
	switch it.Kind {
	case component.ItemGoldenTicket:
		s.itemGone[idx] = true
		TriggerUltimate(w, now, s.itemGone)
		return outcomeUltimate
	case component.ItemHeart:
		restoreLife(w, it)
	default:
		awardItem(w, it, true)
	}
	return outcomeRemoved
}

// consumeProjectile marks the first live projectile overlapping the item
func (s *CollisionSystem) consumeProjectile(w *engine.World, it *component.FallingItem) bool {
	bounds := it.Bounds()
	for j := range w.Projectiles {
		if s.projGone[j] {
			continue
		}
		if w.Projectiles[j].Bounds().Overlaps(bounds) {
			s.projGone[j] = true
			return true
		}
	}
	return false
}

// bossShots resolves boss projectiles against the player, reporting game over
func (s *CollisionSystem) bossShots(w *engine.World, now time.Time) bool {
	player := w.Player.Bounds()
	n := 0
	dead := false
	for _, p := range w.BossProjectiles {
		if !dead && p.Bounds().Overlaps(player) {
			dead = damagePlayer(w, now)
			continue
		}
		w.BossProjectiles[n] = p
		n++
	}
	w.BossProjectiles = w.BossProjectiles[:n]
	return dead
}

// playerShots resolves player projectiles against the boss
func (s *CollisionSystem) playerShots(w *engine.World, now time.Time) {
	b := w.Boss
	if b == nil || b.Defeated() {
		return
	}
	bounds := b.Bounds()
	n := 0
	for _, p := range w.Projectiles {
		if !b.Defeated() && p.Bounds().Overlaps(bounds) {
			b.TakeHit(now)
			w.Emit(event.EventBossHit, &event.BossPayload{HP: b.HP})
			continue
		}
		w.Projectiles[n] = p
		n++
	}
	w.Projectiles = w.Projectiles[:n]
}

// compact drops marked items and projectiles, preserving order
func (s *CollisionSystem) compact(w *engine.World) {
	n := 0
	for i := range w.Items {
		if i < len(s.itemGone) && s.itemGone[i] {
			continue
		}
		w.Items[n] = w.Items[i]
		n++
	}
	w.Items = w.Items[:n]

	n = 0
	for j := range w.Projectiles {
		if j < len(s.projGone) && s.projGone[j] {
			continue
		}
		w.Projectiles[n] = w.Projectiles[j]
		n++
	}
	w.Projectiles = w.Projectiles[:n]
}

func resetMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		return make([]bool, n)
	}
	marks = marks[:n]
	clear(marks)
	return marks
}
