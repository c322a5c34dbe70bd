package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/lixenwraith/festive-catch/component"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/core"
	"github.com/lixenwraith/festive-catch/engine/fsm"
	"github.com/lixenwraith/festive-catch/event"
	"github.com/lixenwraith/festive-catch/physics"
	"github.com/lixenwraith/festive-catch/vmath"
)

// ErrShutdown is returned by a Command to end Run cleanly
var ErrShutdown = errors.New("shutdown requested")

// Command is an input action applied on the loop goroutine between ticks
type Command func(g *Game) error

// Game is the loop driver: it owns the World, the phase machine and the system pipeline
type Game struct {
	World  *World
	Router *event.Router
	Input  *Input
	Audio  AudioPlayer

	clock    TimeProvider
	machine  *fsm.Machine[*Game]
	systems  []System
	lastTick time.Time // Zero means the delta reference was reset
	snapshot *Snapshot
	panics   int
}

// NewGame wires the world, phase machine and event router
func NewGame(clock TimeProvider, rng vmath.Source, audio AudioPlayer) (*Game, error) {
	if audio == nil {
		audio = NopAudio{}
	}
	queue := event.NewEventQueue(event.DefaultQueueSize)
	g := &Game{
		World:   NewWorld(rng, queue),
		Router:  event.NewRouter(queue),
		Input:   NewInput(),
		Audio:   audio,
		clock:   clock,
		machine: fsm.NewMachine[*Game](),
	}

	g.machine.RegisterAction("reset_delta", func(g *Game, _, _ fsm.StateID) {
		g.lastTick = time.Time{}
	})
	g.machine.RegisterAction("start_music", func(g *Game, _, _ fsm.StateID) {
		g.Audio.StartMusic()
	})
	g.machine.RegisterAction("stop_music", func(g *Game, _, _ fsm.StateID) {
		g.Audio.StopMusic()
	})
	g.machine.RegisterAction("game_over", func(g *Game, from, _ fsm.StateID) {
		g.enterGameOver(Phase(from) == PhaseBossBattle)
	})
	g.machine.RegisterGuard("reward_from_play", func(g *Game) bool {
		return !g.World.RewardFromBoss
	})

	if err := g.machine.LoadConfig(phaseGraph, phaseIDs()); err != nil {
		return nil, fmt.Errorf("phase graph: %w", err)
	}
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("phase graph: %w", err)
	}
	g.World.Phase = Phase(g.machine.Current())
	g.snapshot = g.World.Snapshot(clock.Now())
	return g, nil
}

// AddSystems registers gameplay systems, keeping the pipeline sorted by priority
func (g *Game) AddSystems(systems ...System) {
	g.systems = append(g.systems, systems...)
	slices.SortStableFunc(g.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns the pipeline in execution order
func (g *Game) Systems() []System {
	return g.systems
}

// Phase returns the active top-level phase
func (g *Game) Phase() Phase {
	return Phase(g.machine.Current())
}

// LoopActive reports whether the frame loop should keep ticking
func (g *Game) LoopActive() bool {
	return g.Phase().LoopActive()
}

// Snapshot returns the projection published by the most recent tick
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot
}

// Now returns the loop clock's current time
func (g *Game) Now() time.Time {
	return g.clock.Now()
}

// Panics returns the number of tick panics recovered so far
func (g *Game) Panics() int {
	return g.panics
}

// Tick advances the simulation by one frame at the provider's current time
func (g *Game) Tick() {
	g.TickAt(g.clock.Now())
}

// TickAt advances the simulation by one frame at now
// A panic inside the frame is recovered and logged; the next frame runs normally
func (g *Game) TickAt(now time.Time) {
	recovered := false
	func() {
		defer core.Recover("tick", &recovered)
		g.step(now)
	}()
	if recovered {
		g.panics++
		g.World.takePending()
	}
	g.publish(now)
}

// Refresh dispatches pending events and republishes the snapshot without advancing
func (g *Game) Refresh() {
	g.publish(g.clock.Now())
}

func (g *Game) publish(now time.Time) {
	g.Router.DispatchAll()
	g.snapshot = g.World.Snapshot(now)
}

func (g *Game) step(now time.Time) {
	w := g.World
	if !w.Phase.LoopActive() {
		return
	}

	var delta time.Duration
	if !g.lastTick.IsZero() {
		delta = min(max(now.Sub(g.lastTick), 0), constants.MaxFrameDelta)
	}
	g.lastTick = now
	w.Frame++
	g.machine.Update(delta)

	deltaMs := float64(delta) / float64(time.Millisecond)
	tc := &TickContext{
		Now:     now,
		DeltaMs: deltaMs,
		DT:      physics.Normalize(deltaMs),
		Left:    g.Input.Held(DirLeft, now),
		Right:   g.Input.Held(DirRight, now),
	}

	// Cosmetic continuity across overlays
	w.Particles = physics.Particles(w.Particles, tc.DT)

	if w.UltimateActive && !w.Ultimate.Active(now) {
		w.UltimateActive = false
		w.LastSpawn = now.Add(constants.UltimateSpawnBuffer)
	}

	if !w.Phase.IsActivePlay() || w.UltimateActive {
		return
	}

	w.Gain = 0
	for _, s := range g.systems {
		s.Update(w, tc)
		if w.Halted() {
			if action := w.takePending(); action != "" {
				if err := g.fire(action); err != nil {
					log.Printf("system %s: %v", s.Name(), err)
				}
			}
			return
		}
	}
}

// fire applies a transition and mirrors the new phase into the World
func (g *Game) fire(action Action) error {
	from := g.Phase()
	to, err := g.machine.Fire(g, action)
	if err != nil {
		return err
	}
	g.World.Phase = Phase(to)
	g.World.Emit(event.EventPhaseChange, &event.PhasePayload{From: from.String(), To: Phase(to).String()})
	log.Printf("phase %s -> %s (%s)", from, Phase(to), action)
	return nil
}

// apply validates the action before running prep, so a rejected action changes nothing
func (g *Game) apply(action Action, prep func(now time.Time)) error {
	if !g.machine.Can(g, action) {
		_, err := g.machine.Fire(g, action)
		return err
	}
	if prep != nil {
		prep(g.clock.Now())
	}
	return g.fire(action)
}

func (g *Game) newSession(now time.Time) {
	g.World.Reset(now)
	g.Input.Release()
}

// Start begins a fresh CATCH-mode session
func (g *Game) Start() error {
	g.Audio.Resume()
	return g.apply(ActionStart, g.newSession)
}

// StartBoss begins a fresh boss battle
func (g *Game) StartBoss() error {
	g.Audio.Resume()
	return g.apply(ActionStartBoss, func(now time.Time) {
		g.newSession(now)
		g.World.Boss = component.NewBoss(now)
		g.World.Mode = ModeShoot
	})
}

// Pause freezes an ongoing PLAYING session
func (g *Game) Pause() error {
	return g.apply(ActionPause, func(time.Time) {
		g.Input.Release()
	})
}

// Resume continues from PAUSED or dismisses the REWARD overlay
func (g *Game) Resume() error {
	g.Audio.Resume()
	return g.apply(ActionResume, nil)
}

// Quit returns to START from PAUSED, REWARD, GAME_OVER or BOSS_BATTLE
func (g *Game) Quit() error {
	return g.apply(ActionQuit, func(time.Time) {
		g.Input.Release()
	})
}

// Restart begins a fresh session from GAME_OVER
func (g *Game) Restart() error {
	g.Audio.Resume()
	return g.apply(ActionRestart, g.newSession)
}

// OpenWheel shows the lucky wheel side activity
func (g *Game) OpenWheel() error {
	return g.apply(ActionOpenWheel, nil)
}

// OpenTicTacToe shows the tic-tac-toe side activity
func (g *Game) OpenTicTacToe() error {
	return g.apply(ActionOpenTicTacToe, nil)
}

// Close dismisses a side activity
func (g *Game) Close() error {
	return g.apply(ActionClose, nil)
}

// enterGameOver runs on GAME_OVER entry
func (g *Game) enterGameOver(fromBoss bool) {
	w := g.World
	w.SpawnConfetti(constants.GameWidth/2, 50, GameOverBurst, constants.PaletteGameOver)
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}
	w.Emit(event.EventGameOver, &event.GameOverPayload{Score: w.Score, Boss: fromBoss})
	g.Input.Release()
}

// Run drives the loop until ctx is cancelled
// Commands are applied on this goroutine between ticks; frozen phases only republish
func (g *Game) Run(ctx context.Context, interval time.Duration, cmds <-chan Command, onFrame func(*Snapshot)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			if err := cmd(g); err != nil {
				switch {
				case errors.Is(err, ErrShutdown):
					return nil
				case errors.Is(err, fsm.ErrNoTransition):
					// Keys for other phases are ignored
				default:
					return err
				}
			}
			g.Refresh()
			if onFrame != nil {
				onFrame(g.snapshot)
			}

		case <-ticker.C:
			if g.LoopActive() {
				g.Tick()
			} else {
				g.Refresh()
			}
			if onFrame != nil {
				onFrame(g.snapshot)
			}
		}
	}
}
