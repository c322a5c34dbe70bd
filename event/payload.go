package event

import "time"

// ItemPayload describes the resolved item
type ItemPayload struct {
	Kind   string
	Points int
	X, Y   float64
	Shot   bool // Resolved by projectile rather than catch
}

// LivesPayload carries the lives count after the change
type LivesPayload struct {
	Lives int
}

// UltimatePayload carries the total bonus awarded
type UltimatePayload struct {
	Bonus   int
	Blasted int
}

// ModePayload carries the new sub-mode name
type ModePayload struct {
	Mode string
}

// RewardPayload describes an unlocked reward
type RewardPayload struct {
	Tier      string
	Milestone int // Milestone index, 0 for boss rewards
	Score     int
	At        time.Time
}

// GameOverPayload carries the final score
type GameOverPayload struct {
	Score int
	Boss  bool
}

// BossPayload carries remaining boss HP
type BossPayload struct {
	HP int
}

// PhasePayload describes a phase transition by name
type PhasePayload struct {
	From string
	To   string
}
