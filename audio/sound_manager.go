package audio

import (
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
)

const defaultSampleRate = 48000

// ErrDisabled is returned by Initialize when audio is turned off in config
var ErrDisabled = errors.New("audio disabled")

// AudioConfig holds output settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// DefaultAudioConfig returns enabled output at 30% master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.3,
		SampleRate:   defaultSampleRate,
	}
}

// SoundManager manages all game audio
// Every method is safe to call before Initialize and does nothing until output is open
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	muted       bool
	initialized bool
	failed      bool
}

var _ engine.AudioPlayer = (*SoundManager)(nil)

// NewSoundManager creates a new sound manager, nil config selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: mixer,
	}
	sm.master = newVolume(mixer, cfg.MasterVolume).(*effects.Volume)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initLocked()
}

func (sm *SoundManager) initLocked() error {
	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		sm.failed = true
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Resume opens output lazily on the first user gesture; a failed open is not retried
func (sm *SoundManager) Resume() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.failed || !sm.cfg.Enabled {
		return
	}
	if err := sm.initLocked(); err != nil {
		log.Printf("audio: init failed, running silent: %v", err)
	}
}

// Initialized reports whether output is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer keeps the device quiet
	sm.initialized = false
}

// Play starts a one-shot cue
func (sm *SoundManager) Play(cue engine.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := GetCueSound(cue, sm.rate)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartMusic starts the ambient loop if it is not already playing
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil && !sm.music.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(sm.rate), constants.MusicVolume), Paused: false}
	speaker.Lock()
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic stops the ambient loop
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	if !sm.initialized {
		sm.music = nil
		return
	}

	speaker.Lock()
	// Drained streamers are removed from the mixer on its next pass
	sm.music.Streamer = nil
	sm.music = nil
	speaker.Unlock()
}

// ToggleMute flips master output and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
	}
	sm.master.Silent = sm.muted || sm.cfg.MasterVolume <= 0
	if sm.initialized {
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// MusicGenerator generates an endless festive loop: kick, bass and a bell melody
type MusicGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	kick    int
}

// Pentatonic bell line, one note per beat
var musicMelody = [...]float64{659.25, 783.99, 880.00, 783.99, 659.25, 587.33, 523.25, 587.33}

// Root note of the bass per bar of four beats
var musicBass = [...]float64{130.81, 110.00, 87.31, 98.00}

// NewMusicGenerator creates the ambient music generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:      sr,
		samples: sr.N(constants.MusicBeat),
		kick:    sr.N(100 * time.Millisecond),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := g.pos / g.samples
		beatPos := g.pos % g.samples
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kick {
			env := 1.0 - float64(beatPos)/float64(g.kick)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		bassFreq := musicBass[(beat/4)%len(musicBass)]
		bass := 0.15 * math.Sin(2*math.Pi*bassFreq*t)

		bellFreq := musicMelody[beat%len(musicMelody)]
		bellEnv := math.Exp(-t * 6)
		bell := 0.12 * bellEnv * (math.Sin(2*math.Pi*bellFreq*t) + 0.3*math.Sin(2*math.Pi*bellFreq*2*t))

		sample := kick + bass + bell
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
