package audio

import (
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

var cueForEvent = map[event.EventType]engine.Cue{
	event.EventCatch:      engine.CueCatch,
	event.EventMiss:       engine.CueMiss,
	event.EventLifeUp:     engine.CueLifeUp,
	event.EventCombo:      engine.CueCombo,
	event.EventShoot:      engine.CueShoot,
	event.EventUltimate:   engine.CueUltimate,
	event.EventModeSwitch: engine.CueModeSwitch,
	event.EventReward:     engine.CueReward,
	event.EventGameOver:   engine.CueGameOver,
	event.EventBossHit:    engine.CueCatch,
}

// Handler plays the cue for each gameplay event
type Handler struct {
	player engine.AudioPlayer
}

// NewHandler creates an audio event handler
func NewHandler(player engine.AudioPlayer) *Handler {
	return &Handler{player: player}
}

// HandleEvent implements event.Handler
func (h *Handler) HandleEvent(ev event.GameEvent) {
	if cue, ok := cueForEvent[ev.Type]; ok {
		h.player.Play(cue)
	}
}

// EventTypes implements event.Handler
func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCatch,
		event.EventMiss,
		event.EventLifeUp,
		event.EventCombo,
		event.EventShoot,
		event.EventUltimate,
		event.EventModeSwitch,
		event.EventReward,
		event.EventGameOver,
		event.EventBossHit,
	}
}
