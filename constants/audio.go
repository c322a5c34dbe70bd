package constants

import "time"

// Catch: rising sine ping
const (
	CatchSoundDuration = 100 * time.Millisecond
	CatchSoundAttack   = 2 * time.Millisecond
	CatchSoundRelease  = 90 * time.Millisecond
)

// Miss: short sawtooth thud
const (
	MissSoundDuration = 150 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 140 * time.Millisecond
)

// Reward: triangle arpeggio, one note per step
const (
	RewardNoteDuration = 300 * time.Millisecond
	RewardNoteStep     = 80 * time.Millisecond
	RewardNoteRelease  = 290 * time.Millisecond
)

// Combo: power-up slide with a harmonic
const (
	ComboSoundDuration = 500 * time.Millisecond
	ComboSoundAttack   = 5 * time.Millisecond
	ComboSoundRelease  = 490 * time.Millisecond
)

// Game over: sad slide down
const (
	GameOverSoundDuration = 800 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverSoundRelease  = 790 * time.Millisecond
)

// Shoot: short square pew
const (
	ShootSoundDuration = 100 * time.Millisecond
	ShootSoundAttack   = 2 * time.Millisecond
	ShootSoundRelease  = 90 * time.Millisecond
)

// Mode switch: rising triangle sweep
const (
	ModeSwitchSoundDuration = 500 * time.Millisecond
	ModeSwitchSoundAttack   = 5 * time.Millisecond
	ModeSwitchSoundRelease  = 490 * time.Millisecond
)

// Life up: rapid rising triad
const (
	LifeUpNoteDuration = 100 * time.Millisecond
	LifeUpNoteStep     = 50 * time.Millisecond
	LifeUpNoteRelease  = 95 * time.Millisecond
)

// Ultimate: low rumble under a major chord
const (
	UltimateRumbleDuration = 1 * time.Second
	UltimateChordDuration  = 2 * time.Second
	UltimateChordAttack    = 100 * time.Millisecond
	UltimateChordRelease   = 1900 * time.Millisecond
)

// Ambient music
const (
	MusicBeat   = 600 * time.Millisecond
	MusicVolume = 0.15
)

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond
