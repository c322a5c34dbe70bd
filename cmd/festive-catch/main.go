package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/festive-catch/audio"
	"github.com/lixenwraith/festive-catch/bonus"
	"github.com/lixenwraith/festive-catch/config"
	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/core"
	"github.com/lixenwraith/festive-catch/engine"
	"github.com/lixenwraith/festive-catch/event"
	"github.com/lixenwraith/festive-catch/render"
	"github.com/lixenwraith/festive-catch/store"
	"github.com/lixenwraith/festive-catch/systems"
	"github.com/lixenwraith/festive-catch/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under logs/")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	saveFlag   = flag.String("save", "", "Override the save file path")
	bossFlag   = flag.Bool("boss", false, "Skip the menu and start the boss battle")
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "festive-catch: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *saveFlag != "" {
		cfg.SavePath = *saveFlag
	}

	st, err := store.Open(cfg.SavePath, cfg.Bonus.DailySpins)
	if err != nil {
		return err
	}

	// Output opens on the first Start/Resume gesture
	sm := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.MasterVolume,
		SampleRate:   cfg.Audio.SampleRate,
	})
	defer sm.Cleanup()
	if *muteFlag {
		sm.ToggleMute()
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	game, err := engine.NewGame(engine.NewMonotonicTimeProvider(), rng, sm)
	if err != nil {
		return err
	}
	game.World.StartLives = cfg.Game.InitialLives
	game.World.HighScore = st.HighScore()
	game.AddSystems(systems.DefaultPipeline()...)

	storeHandler := store.NewHandler(st)
	game.Router.Register(audio.NewHandler(sm))
	game.Router.Register(storeHandler)
	game.Router.Register(phaseLogger())

	arcade, err := bonus.NewArcade(st, rng)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.RegisterTerminal(screen)
	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmds := make(chan engine.Command, 64)
	if *bossFlag {
		cmds <- func(g *engine.Game) error { return g.StartBoss() }
	}

	// Input polling interacts directly with the terminal, commands hop onto the loop goroutine
	core.Go(func() {
		pollInput(ctx, screen, game.Input, arcade, renderer, cmds)
	})

	game.Refresh()
	err = game.Run(ctx, cfg.Game.FrameInterval, cmds, func(s *engine.Snapshot) {
		frame := render.Frame{
			Snap:    s,
			Voucher: storeHandler.LastVoucher(),
			Muted:   sm.Muted(),
		}
		if s.Phase == engine.PhaseLuckyWheel || s.Phase == engine.PhaseTicTacToe {
			arcade.Update(s.Now)
			view := arcade.View(s.Now)
			frame.Bonus = &view
		}
		renderer.Draw(frame)
	})

	if saveErr := st.Save(); saveErr != nil {
		log.Printf("save on exit failed: %v", saveErr)
	}
	return err
}

// pollInput turns terminal events into held directions and loop commands until ctx ends
func pollInput(ctx context.Context, screen tcell.Screen, input *engine.Input, arcade *bonus.Arcade, renderer *render.TerminalRenderer, cmds chan<- engine.Command) {
	send := func(cmd engine.Command) {
		select {
		case cmds <- cmd:
		case <-ctx.Done():
		}
	}

	for ctx.Err() == nil {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if dir, ok := keyDirection(ev); ok {
				input.Tap(dir, ev.When(), constants.KeyHoldWindow)
				continue
			}
			if cmd := keyCommand(ev, arcade); cmd != nil {
				send(cmd)
			}

		case *tcell.EventMouse:
			w, _ := screen.Size()
			x, _ := ev.Position()
			pressed := ev.Buttons()&tcell.Button1 != 0
			input.Hold(engine.DirLeft, pressed && x < w/2)
			input.Hold(engine.DirRight, pressed && x >= w/2)

		case *tcell.EventResize:
			w, h := ev.Size()
			send(func(*engine.Game) error {
				renderer.Resize(w, h)
				screen.Sync()
				return nil
			})
		}
	}
}

// phaseLogger records phase changes and session results in the debug log
func phaseLogger() event.Handler {
	return event.HandlerFunc{
		Types: []event.EventType{event.EventPhaseChange, event.EventGameOver, event.EventReward},
		Fn: func(ev event.GameEvent) {
			switch p := ev.Payload.(type) {
			case *event.PhasePayload:
				log.Printf("frame %d: phase %s -> %s", ev.Frame, p.From, p.To)
			case *event.GameOverPayload:
				log.Printf("frame %d: game over, score %d (boss %v)", ev.Frame, p.Score, p.Boss)
			case *event.RewardPayload:
				log.Printf("frame %d: reward %s at milestone %d", ev.Frame, p.Tier, p.Milestone)
			}
		},
	}
}
