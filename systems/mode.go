package systems

import (
	"time"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// ModeSystem keeps the CATCH/SHOOT sub-mode in sync with the score level
type ModeSystem struct{}

// NewModeSystem creates the sub-mode system
func NewModeSystem() engine.System {
	return &ModeSystem{}
}

func (s *ModeSystem) Name() string  { return "mode" }
func (s *ModeSystem) Priority() int { return constants.PriorityMode }

// Update re-derives the sub-mode; boss battles always shoot
func (s *ModeSystem) Update(w *engine.World, tc *engine.TickContext) {
	if w.Phase == engine.PhaseBossBattle {
		w.Mode = engine.ModeShoot
		return
	}
	SyncMode(w, tc.Now)
}

// SyncMode applies a parity change: clears the field, notifies and flashes
// Returns true when the sub-mode switched
func SyncMode(w *engine.World, now time.Time) bool {
	expected := engine.SubModeForScore(w.Score)
	if w.Mode == expected {
		return false
	}
	w.Mode = expected
	w.ClearField()

	w.NotifyText = constants.NotifyCatch
	if expected == engine.ModeShoot {
		w.NotifyText = constants.NotifyShoot
	}
	w.Notification.Set(now, constants.NotificationDuration)
	w.ModeFlash.Set(now, constants.ModeFlashDuration)

	w.Emit(event.EventModeSwitch, &event.ModePayload{Mode: expected.String()})
	return true
}
