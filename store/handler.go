package store

import (
	"log"
	"sync"

	"github.com/lixenwraith/festive-catch/event"
)

// Handler persists rewards and high scores as they are emitted
type Handler struct {
	store *Store

	mu   sync.Mutex
	last *Voucher
}

// NewHandler creates a persistence event handler
func NewHandler(s *Store) *Handler {
	return &Handler{store: s}
}

// HandleEvent implements event.Handler
func (h *Handler) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventReward:
		p, ok := ev.Payload.(*event.RewardPayload)
		if !ok {
			return
		}
		v := h.store.IssueVoucher(p.Tier, p.At)
		h.mu.Lock()
		h.last = &v
		h.mu.Unlock()
		log.Printf("store: issued voucher %s tier %s", v.Code, v.Tier)
		h.save()

	case event.EventGameOver:
		p, ok := ev.Payload.(*event.GameOverPayload)
		if !ok {
			return
		}
		if h.store.SetHighScore(p.Score) {
			log.Printf("store: new high score %d", p.Score)
		}
		h.save()
	}
}

// EventTypes implements event.Handler
func (h *Handler) EventTypes() []event.EventType {
	return []event.EventType{event.EventReward, event.EventGameOver}
}

// LastVoucher returns the most recently issued voucher, nil before the first reward
func (h *Handler) LastVoucher() *Voucher {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	v := *h.last
	return &v
}

func (h *Handler) save() {
	if err := h.store.Save(); err != nil {
		log.Printf("store: save failed: %v", err)
	}
}
