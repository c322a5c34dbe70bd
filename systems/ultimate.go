package systems

import (
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// TriggerUltimate blasts every live ordinary item for points+20 each plus a flat 100,
// clears the field, maxes lives and starts the cutscene
// skip marks items already resolved this tick; the ticket itself is excluded by kind
func TriggerUltimate(w *engine.World, now time.Time, skip []bool) int {
	bonus := constants.UltimateBaseBonus
	blasted := 0
	for i := range w.Items {
		it := &w.Items[i]
		if (i < len(skip) && skip[i]) || !it.Kind.IsOrdinary() {
			continue
		}
		bonus += it.Points + constants.UltimateItemBonus
		blasted++
		cx, cy := it.Center()
		w.SpawnConfetti(cx, cy, engine.ItemBurst, engine.PaletteFor(it.Kind))
	}

	w.ClearField()
	w.Gain += bonus
	w.Lives = constants.MaxLives
	w.UltimateActive = true
	w.Ultimate.Set(now, constants.UltimateDuration)

	pb := w.Player.Bounds()
	w.SpawnText(pb.CenterX(), pb.Y-10, constants.UltimateText, constants.ColorUltimate, 8, 1.0, constants.TextParticleDecay)
	w.SpawnConfetti(pb.CenterX(), pb.Y-10, engine.ItemBurst, engine.PaletteFor(component.ItemGoldenTicket))

	w.Emit(event.EventUltimate, &event.UltimatePayload{Bonus: bonus, Blasted: blasted})
	return bonus
}
