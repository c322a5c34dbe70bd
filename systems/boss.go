package systems

import (
	"log"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// BossSystem resolves boss defeat into the diamond-box reward
type BossSystem struct{}

// NewBossSystem creates the boss outcome system
func NewBossSystem() engine.System {
	return &BossSystem{}
}

func (s *BossSystem) Name() string  { return "boss" }
func (s *BossSystem) Priority() int { return constants.PriorityBoss }

func (s *BossSystem) Update(w *engine.World, tc *engine.TickContext) {
	if w.Phase != engine.PhaseBossBattle || w.Boss == nil || !w.Boss.Defeated() {
		return
	}

	w.Score += w.Gain + constants.BossDefeatBonus
	w.Gain = 0
	w.RewardTier = constants.RewardBoss
	w.RewardFromBoss = true
	w.BossProjectiles = w.BossProjectiles[:0]

	cx := w.Boss.Bounds().CenterX()
	w.SpawnConfetti(cx, w.Boss.Y+w.Boss.Height/2, engine.GameOverBurst, constants.PaletteGameOver)

	w.Emit(event.EventBossDefeated, &event.BossPayload{HP: w.Boss.HP})
	w.Emit(event.EventReward, &event.RewardPayload{
		Tier:  constants.RewardBoss,
		Score: w.Score,
		At:    tc.Now,
	})
	log.Printf("boss defeated, score %d", w.Score)
	w.Trigger(engine.ActionBossDefeated)
}
