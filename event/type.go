package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Gameplay ===

	// EventCatch signals an ordinary item resolved for points (caught or shot)
	// Trigger: CollisionSystem
	// Consumer: AudioHandler | Payload: *ItemPayload
	EventCatch

	// EventMiss signals a non-fatal life loss
	// Trigger: CollisionSystem (missed item, bad overlap, boss shot)
	// Consumer: AudioHandler | Payload: *LivesPayload
	EventMiss

	// EventLifeUp signals a heart resolved
	// Trigger: CollisionSystem
	// Consumer: AudioHandler | Payload: *LivesPayload
	EventLifeUp

	// EventCombo signals five consecutive red gifts caught
	// Trigger: CollisionSystem
	// Consumer: AudioHandler | Payload: nil
	EventCombo

	// EventShoot signals a player projectile fired
	// Trigger: FireSystem
	// Consumer: AudioHandler | Payload: nil
	EventShoot

	// EventUltimate signals the golden ticket effect
	// Trigger: CollisionSystem via UltimateEffect
	// Consumer: AudioHandler, log | Payload: *UltimatePayload
	EventUltimate

	// EventModeSwitch signals a CATCH/SHOOT sub-mode change
	// Trigger: ModeSystem
	// Consumer: AudioHandler | Payload: *ModePayload
	EventModeSwitch

	// === Progression ===

	// EventReward signals a milestone or boss reward
	// Trigger: ScoreSystem, BossSystem
	// Consumer: AudioHandler, store.Handler | Payload: *RewardPayload
	EventReward

	// EventGameOver signals lives depleted
	// Trigger: CollisionSystem
	// Consumer: AudioHandler, store.Handler | Payload: *GameOverPayload
	EventGameOver

	// === Boss ===

	// EventBossHit signals a player projectile landing on the boss
	// Trigger: CollisionSystem | Payload: *BossPayload
	EventBossHit

	// EventBossShoot signals the boss firing
	// Trigger: FireSystem | Payload: nil
	EventBossShoot

	// EventBossDefeated signals boss HP reaching zero
	// Trigger: BossSystem | Payload: *BossPayload
	EventBossDefeated

	// === Lifecycle ===

	// EventPhaseChange signals a top-level phase transition
	// Trigger: engine.Game
	// Consumer: AudioHandler (music), log | Payload: *PhasePayload
	EventPhaseChange

	// eventTypeCount bounds the registry
	eventTypeCount
)

var eventTypeNames = [...]string{
	EventNone:         "none",
	EventCatch:        "catch",
	EventMiss:         "miss",
	EventLifeUp:       "life-up",
	EventCombo:        "combo",
	EventShoot:        "shoot",
	EventUltimate:     "ultimate",
	EventModeSwitch:   "mode-switch",
	EventReward:       "reward",
	EventGameOver:     "game-over",
	EventBossHit:      "boss-hit",
	EventBossShoot:    "boss-shoot",
	EventBossDefeated: "boss-defeated",
	EventPhaseChange:  "phase-change",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// GameEvent is a single emitted occurrence
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
