package systems

import (
	"fmt"
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// scoreBurst shows floating points text and a confetti burst for a resolved item
func scoreBurst(w *engine.World, it *component.FallingItem, text, color string, size float64) {
	cx, cy := it.Center()
	w.SpawnText(cx, cy-5, text, color, size, 1.0, constants.TextParticleDecay)
	w.SpawnConfetti(cx, cy, engine.ItemBurst, engine.PaletteFor(it.Kind))
}

// awardItem credits an ordinary item to the tick's gain
func awardItem(w *engine.World, it *component.FallingItem, shot bool) {
	w.Gain += it.Points
	scoreBurst(w, it, fmt.Sprintf("+%d", it.Points), constants.ColorScore, 5)
	w.Emit(event.EventCatch, &event.ItemPayload{
		Kind:   it.Kind.String(),
		Points: it.Points,
		X:      it.X,
		Y:      it.Y,
		Shot:   shot,
	})
}

// restoreLife resolves a heart
func restoreLife(w *engine.World, it *component.FallingItem) {
	lives := w.AddLife()
	scoreBurst(w, it, "+1 "+constants.GlyphHeart, constants.ColorLife, 5)
	w.Emit(event.EventLifeUp, &event.LivesPayload{Lives: lives})
}

// damagePlayer removes a life and reports game over
// A non-fatal loss shakes the screen and plays the miss cue
func damagePlayer(w *engine.World, now time.Time) bool {
	w.Combo = 0
	if w.LoseLife() {
		return true
	}
	w.Shake.Set(now, constants.ShakeDuration)
	w.Emit(event.EventMiss, &event.LivesPayload{Lives: w.Lives})
	return false
}

// trackCombo counts consecutive red gifts caught in CATCH mode
func trackCombo(w *engine.World, kind component.ItemKind, now time.Time) {
	if kind != component.ItemGiftRed {
		w.Combo = 0
		return
	}
	w.Combo++
	if w.Combo < constants.ComboLength {
		return
	}
	w.Combo = 0
	w.Celebrate.Set(now, constants.CelebrateDuration)
	pb := w.Player.Bounds()
	w.SpawnText(pb.CenterX(), pb.Y-15, constants.ComboText, constants.ColorCombo, 8, 1.5, constants.ComboParticleDecay)
	w.Emit(event.EventCombo, nil)
}
