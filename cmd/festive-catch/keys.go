package main

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/festive-catch/bonus"
	"github.com/lixenwraith/festive-catch/engine"
)

// keyDirection maps movement keys to a steering direction
func keyDirection(ev *tcell.EventKey) (engine.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.DirLeft, true
	case tcell.KeyRight:
		return engine.DirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return engine.DirLeft, true
		case 'd', 'D', 'l':
			return engine.DirRight, true
		}
	}
	return 0, false
}

// keyCommand maps a non-movement key to a loop command, nil when the key is unbound
// Phase checks happen inside the command so they see the loop's current state
func keyCommand(ev *tcell.EventKey, arcade *bonus.Arcade) engine.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return func(*engine.Game) error { return engine.ErrShutdown }
	case tcell.KeyEnter:
		return func(g *engine.Game) error {
			if g.Phase() == engine.PhaseStart {
				return g.Start()
			}
			return g.Resume()
		}
	case tcell.KeyRune:
	default:
		return nil
	}

	r := ev.Rune()
	switch r {
	case 'q', 'Q':
		return func(g *engine.Game) error {
			switch g.Phase() {
			case engine.PhaseStart:
				return engine.ErrShutdown
			case engine.PhaseLuckyWheel, engine.PhaseTicTacToe:
				return g.Close()
			default:
				return g.Quit()
			}
		}
	case 'p', 'P':
		return func(g *engine.Game) error {
			if g.Phase() == engine.PhasePaused {
				return g.Resume()
			}
			return g.Pause()
		}
	case 'r', 'R':
		return func(g *engine.Game) error { return g.Restart() }
	case 'b', 'B':
		return func(g *engine.Game) error { return g.StartBoss() }
	case 'm', 'M':
		return func(g *engine.Game) error {
			log.Printf("audio muted: %v", g.Audio.ToggleMute())
			return nil
		}
	case 'w', 'W':
		return func(g *engine.Game) error {
			if err := g.OpenWheel(); err != nil {
				return err
			}
			arcade.Enter()
			return nil
		}
	case 't', 'T':
		return func(g *engine.Game) error {
			if err := g.OpenTicTacToe(); err != nil {
				return err
			}
			arcade.Enter()
			return nil
		}
	case ' ':
		return func(g *engine.Game) error {
			if g.Phase() != engine.PhaseLuckyWheel {
				return nil
			}
			return bonusError(arcade.SpinWheel(g.Now()))
		}
	case 'n', 'N':
		return func(g *engine.Game) error {
			if g.Phase() == engine.PhaseTicTacToe {
				arcade.ResetBoard()
			}
			return nil
		}
	}

	if r >= '1' && r <= '9' {
		cell := int(r - '1')
		return func(g *engine.Game) error {
			if g.Phase() != engine.PhaseTicTacToe {
				return nil
			}
			return bonusError(arcade.PlayCell(cell, g.Now()))
		}
	}
	return nil
}

// bonusError logs rejected side-activity moves; they never stop the loop
func bonusError(err error) error {
	if err != nil && !errors.Is(err, bonus.ErrSpinning) {
		log.Printf("bonus: %v", err)
	}
	return nil
}
