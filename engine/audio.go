package engine

// Cue names a fire-and-forget sound effect
type Cue uint8

const (
	CueCatch Cue = iota
	CueMiss
	CueReward
	CueCombo
	CueGameOver
	CueShoot
	CueModeSwitch
	CueLifeUp
	CueUltimate
	CueCount
)

var cueNames = [...]string{
	CueCatch:      "catch",
	CueMiss:       "miss",
	CueReward:     "reward",
	CueCombo:      "combo",
	CueGameOver:   "game-over",
	CueShoot:      "shoot",
	CueModeSwitch: "mode-switch",
	CueLifeUp:     "life-up",
	CueUltimate:   "ultimate",
}

func (c Cue) String() string {
	if c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// AudioPlayer is the audio feedback collaborator
// Every call is fire-and-forget and must be a no-op when output is unavailable
type AudioPlayer interface {
	Resume()
	StartMusic()
	StopMusic()
	ToggleMute() bool
	Play(cue Cue)
}

// NopAudio discards all audio calls
type NopAudio struct{}

func (NopAudio) Resume()          {}
func (NopAudio) StartMusic()      {}
func (NopAudio) StopMusic()       {}
func (NopAudio) ToggleMute() bool { return true }
func (NopAudio) Play(Cue)         {}
