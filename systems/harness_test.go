package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
)

// scriptedSource replays fixed values, then returns fallback forever
// A fallback above SpawnChance keeps the spawner quiet
type scriptedSource struct {
	vals     []float64
	i        int
	fallback float64
}

func (s *scriptedSource) Float64() float64 {
	if s.i < len(s.vals) {
		v := s.vals[s.i]
		s.i++
		return v
	}
	return s.fallback
}

type harness struct {
	t      *testing.T
	game   *engine.Game
	world  *engine.World
	clock  *engine.MockTimeProvider
	rng    *scriptedSource
	events []event.GameEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		clock: engine.NewMockTimeProvider(time.Date(2025, 12, 24, 19, 0, 0, 0, time.UTC)),
		rng:   &scriptedSource{fallback: 0.99},
	}
	g, err := engine.NewGame(h.clock, h.rng, nil)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.AddSystems(DefaultPipeline()...)

	all := make([]event.EventType, 0, 16)
	for et := event.EventCatch; et <= event.EventPhaseChange; et++ {
		all = append(all, et)
	}
	g.Router.Register(event.HandlerFunc{Types: all, Fn: func(ev event.GameEvent) {
		h.events = append(h.events, ev)
	}})

	h.game = g
	h.world = g.World
	return h
}

// tick advances the clock by d and runs one frame
func (h *harness) tick(d time.Duration) {
	h.game.TickAt(h.clock.Advance(d))
}

func (h *harness) count(t event.EventType) int {
	n := 0
	for _, ev := range h.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (h *harness) last(t event.EventType) (event.GameEvent, bool) {
	for i := len(h.events) - 1; i >= 0; i-- {
		if h.events[i].Type == t {
			return h.events[i], true
		}
	}
	return event.GameEvent{}, false
}

// itemOnPlayer places an item overlapping the player hitbox
func (h *harness) itemOnPlayer(kind component.ItemKind, width float64) component.Entity {
	id := h.world.NextID()
	h.world.Items = append(h.world.Items, component.FallingItem{
		ID:     id,
		X:      h.world.Player.X,
		Y:      constants.PlayerY - 2,
		Width:  width,
		Speed:  0.2,
		Kind:   kind,
		Points: component.PointsForSize(width),
	})
	return id
}

// itemAt places an item far from the player
func (h *harness) itemAt(kind component.ItemKind, x, y, width float64) component.Entity {
	id := h.world.NextID()
	h.world.Items = append(h.world.Items, component.FallingItem{
		ID:     id,
		X:      x,
		Y:      y,
		Width:  width,
		Speed:  0.2,
		Kind:   kind,
		Points: component.PointsForSize(width),
	})
	return id
}

func (h *harness) mustStart() {
	h.t.Helper()
	if err := h.game.Start(); err != nil {
		h.t.Fatalf("Start failed: %v", err)
	}
}
