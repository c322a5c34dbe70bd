package systems

import (
	"log"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// ScoreSystem applies the tick's gains and detects 500-point milestones
type ScoreSystem struct{}

// NewScoreSystem creates the scoring and milestone system
func NewScoreSystem() engine.System {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Name() string  { return "score" }
func (s *ScoreSystem) Priority() int { return constants.PriorityScore }

// RewardTier maps a milestone score to its voucher tier
func RewardTier(milestoneScore int) string {
	switch milestoneScore {
	case 500:
		return constants.Reward500
	case 1000:
		return constants.Reward1000
	case 1500:
		return constants.Reward1500
	}
	return constants.RewardTop
}

func (s *ScoreSystem) Update(w *engine.World, tc *engine.TickContext) {
	if w.Gain <= 0 {
		return
	}
	old := w.Score
	w.Score += w.Gain
	w.Gain = 0

	// Boss battles reward only on defeat
	if w.Phase != engine.PhasePlaying {
		return
	}

	// Parity is re-derived before the reward check so the switch lands on the same tick
	SyncMode(w, tc.Now)

	oldLevel, newLevel := engine.Level(old), engine.Level(w.Score)
	if newLevel <= oldLevel {
		return
	}
	tier := RewardTier(newLevel * constants.MilestoneStep)
	w.RewardTier = tier
	w.RewardFromBoss = false
	w.Emit(event.EventReward, &event.RewardPayload{
		Tier:      tier,
		Milestone: newLevel,
		Score:     w.Score,
		At:        tc.Now,
	})
	log.Printf("milestone %d reached at score %d, reward %s", newLevel, w.Score, tier)
	w.Trigger(engine.ActionReward)
}
