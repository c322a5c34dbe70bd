package engine

import (
	_ "embed"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine/fsm"
)

// Phase is the top-level game state, exactly one is active
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseReward
	PhaseBossBattle
	PhaseLuckyWheel
	PhaseTicTacToe
)

var phaseNames = [...]string{
	PhaseStart:      "START",
	PhasePlaying:    "PLAYING",
	PhasePaused:     "PAUSED",
	PhaseGameOver:   "GAME_OVER",
	PhaseReward:     "REWARD",
	PhaseBossBattle: "BOSS_BATTLE",
	PhaseLuckyWheel: "LUCKY_WHEEL",
	PhaseTicTacToe:  "TIC_TAC_TOE",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "UNKNOWN"
}

// IsActivePlay reports whether gameplay systems run in this phase
func (p Phase) IsActivePlay() bool {
	return p == PhasePlaying || p == PhaseBossBattle
}

// LoopActive reports whether the frame loop keeps ticking in this phase
// PAUSED, START and REWARD freeze the simulation
func (p Phase) LoopActive() bool {
	switch p {
	case PhasePlaying, PhaseGameOver, PhaseBossBattle, PhaseLuckyWheel, PhaseTicTacToe:
		return true
	}
	return false
}

// phaseIDs maps config state names to machine IDs
func phaseIDs() map[string]fsm.StateID {
	ids := make(map[string]fsm.StateID, len(phaseNames))
	for p, name := range phaseNames {
		ids[name] = fsm.StateID(p)
	}
	return ids
}

// SubMode is the gameplay variant within PLAYING
type SubMode int

const (
	ModeCatch SubMode = iota
	ModeShoot
)

func (m SubMode) String() string {
	if m == ModeShoot {
		return "SHOOT"
	}
	return "CATCH"
}

// Level returns the score-derived difficulty level
func Level(score int) int {
	return score / constants.MilestoneStep
}

// SubModeForScore derives the sub-mode from level parity: even CATCH, odd SHOOT
func SubModeForScore(score int) SubMode {
	if Level(score)%2 == 1 {
		return ModeShoot
	}
	return ModeCatch
}

// Action triggers a top-level phase transition
type Action = fsm.Trigger

const (
	ActionStart         Action = "Start"
	ActionStartBoss     Action = "StartBoss"
	ActionPause         Action = "Pause"
	ActionResume        Action = "Resume"
	ActionQuit          Action = "Quit"
	ActionRestart       Action = "Restart"
	ActionOpenWheel     Action = "OpenWheel"
	ActionOpenTicTacToe Action = "OpenTicTacToe"
	ActionClose         Action = "Close"

	// Raised by systems from inside a tick
	ActionReward       Action = "Reward"
	ActionDie          Action = "Die"
	ActionBossDefeated Action = "BossDefeated"
)

//go:embed phases.toml
var phaseGraph []byte
