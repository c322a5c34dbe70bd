package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/engine"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// Curve selects how a sweep moves between its start and end frequency
type Curve int

const (
	CurveLinear Curve = iota
	CurveExponential
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	from     float64
	to       float64
	curve    Curve
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, CurveLinear, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over its duration
func NewSweep(from, to float64, curve Curve, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	if curve == CurveExponential && (from <= 0 || to <= 0) {
		curve = CurveLinear
	}
	return &oscillator{
		from:     from,
		to:       to,
		curve:    curve,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) freqAt() float64 {
	if o.from == o.to || o.duration == 0 {
		return o.from
	}
	p := float64(o.position) / float64(o.duration)
	if o.curve == CurveExponential {
		return o.from * math.Pow(o.to/o.from, p)
	}
	return o.from + (o.to-o.from)*p
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freqAt() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// delayed prefixes s with silence
func delayed(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

// Cue generators

// CreateCatchSound is a high ping rising an octave
func CreateCatchSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(880, 1760, CurveExponential, constants.CatchSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.CatchSoundDuration, constants.CatchSoundAttack, constants.CatchSoundRelease, rate)
	return newVolume(shaped, 0.5)
}

// CreateMissSound is a short sawtooth thud sliding down
func CreateMissSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(150, 100, CurveLinear, constants.MissSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.MissSoundDuration, constants.MissSoundAttack, constants.MissSoundRelease, rate)
	return newVolume(shaped, 0.3)
}

// CreateRewardSound is a C major arpeggio with overlapping notes
func CreateRewardSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	return newVolume(arpeggio(notes, WaveTriangle, constants.RewardNoteDuration, constants.RewardNoteStep, constants.RewardNoteRelease, rate), 0.3)
}

// CreateComboSound is a power-up slide with a triangle harmonic
func CreateComboSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ComboSoundDuration
	fund := NewEnvelope(NewSweep(400, 1200, CurveExponential, d, WaveSine, rate), d, constants.ComboSoundAttack, constants.ComboSoundRelease, rate)
	harm := NewEnvelope(NewSweep(600, 1800, CurveExponential, d, WaveTriangle, rate), d, constants.ComboSoundAttack, constants.ComboSoundRelease, rate)
	return beep.Mix(newVolume(fund, 0.5), newVolume(harm, 0.2))
}

// CreateGameOverSound is a long sad slide down
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	d := constants.GameOverSoundDuration
	osc := NewSweep(300, 50, CurveLinear, d, WaveSaw, rate)
	shaped := NewEnvelope(osc, d, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)
	return newVolume(shaped, 0.4)
}

// CreateShootSound is a short square pew
func CreateShootSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ShootSoundDuration
	osc := NewSweep(600, 300, CurveExponential, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, constants.ShootSoundAttack, constants.ShootSoundRelease, rate)
	return newVolume(shaped, 0.2)
}

// CreateModeSwitchSound is a rising triangle sweep
func CreateModeSwitchSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ModeSwitchSoundDuration
	osc := NewSweep(200, 800, CurveLinear, d, WaveTriangle, rate)
	shaped := NewEnvelope(osc, d, constants.ModeSwitchSoundAttack, constants.ModeSwitchSoundRelease, rate)
	return newVolume(shaped, 0.3)
}

// CreateLifeUpSound is a rapid rising A major triad
func CreateLifeUpSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{440, 554.37, 659.25}
	return newVolume(arpeggio(notes, WaveSine, constants.LifeUpNoteDuration, constants.LifeUpNoteStep, constants.LifeUpNoteRelease, rate), 0.3)
}

// CreateUltimateSound is a falling rumble under a held C major chord
func CreateUltimateSound(rate beep.SampleRate) beep.Streamer {
	rd := constants.UltimateRumbleDuration
	rumble := NewEnvelope(NewSweep(100, 20, CurveExponential, rd, WaveSaw, rate), rd, 0, rd, rate)

	cd := constants.UltimateChordDuration
	chord := []float64{261.63, 329.63, 392.00, 523.25}
	voices := make([]beep.Streamer, 0, len(chord)+1)
	voices = append(voices, newVolume(rumble, 0.8))
	for _, f := range chord {
		v := NewEnvelope(NewOscillator(f, cd, WaveTriangle, rate), cd, constants.UltimateChordAttack, constants.UltimateChordRelease, rate)
		voices = append(voices, newVolume(v, 0.2))
	}
	return beep.Mix(voices...)
}

func arpeggio(notes []float64, wave WaveType, dur, step, release time.Duration, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		note := NewEnvelope(NewOscillator(f, dur, wave, rate), dur, 0, release, rate)
		voices[i] = delayed(note, time.Duration(i)*step, rate)
	}
	return beep.Mix(voices...)
}

// GetCueSound returns the streamer for a cue, nil for unknown cues
func GetCueSound(cue engine.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case engine.CueCatch:
		return CreateCatchSound(rate)
	case engine.CueMiss:
		return CreateMissSound(rate)
	case engine.CueReward:
		return CreateRewardSound(rate)
	case engine.CueCombo:
		return CreateComboSound(rate)
	case engine.CueGameOver:
		return CreateGameOverSound(rate)
	case engine.CueShoot:
		return CreateShootSound(rate)
	case engine.CueModeSwitch:
		return CreateModeSwitchSound(rate)
	case engine.CueLifeUp:
		return CreateLifeUpSound(rate)
	case engine.CueUltimate:
		return CreateUltimateSound(rate)
	default:
		return nil
	}
}
