package bonus

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/festive-catch/constants"
	"github.com/lixenwraith/festive-catch/vmath"
)

var (
	ErrSpinning     = errors.New("wheel is already spinning")
	ErrNoSegments   = errors.New("wheel needs at least one segment")
	ErrWeightNotPos = errors.New("segment weight must be positive")
)

// Segment is one slice of the wheel; an empty Tier is a losing slice
type Segment struct {
	Label  string
	Tier   string
	Weight int
}

// DefaultSegments is the promotional wheel layout
func DefaultSegments() []Segment {
	return []Segment{
		{Label: "VOUCHER 5K", Tier: constants.Reward500, Weight: 30},
		{Label: constants.WheelLoseLabel, Weight: 25},
		{Label: "VOUCHER 10K", Tier: constants.Reward1000, Weight: 20},
		{Label: "GIẢM 10%", Tier: constants.Reward1500, Weight: 10},
		{Label: constants.WheelLoseLabel, Weight: 10},
		{Label: "GIẢM 15%", Tier: constants.RewardTop, Weight: 5},
	}
}

// Wheel is a weighted prize wheel with a timed ease-out spin
type Wheel struct {
	segments []Segment
	total    int

	spinning bool
	start    time.Time
	from     int
	travel   int // Segments advanced over the whole spin
	result   int
	settled  int // Index shown at rest
}

// NewWheel validates segments and builds a wheel resting on the first one
func NewWheel(segments []Segment) (*Wheel, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	total := 0
	for i, s := range segments {
		if s.Weight <= 0 {
			return nil, errors.Wrapf(ErrWeightNotPos, "segment %d %q", i, s.Label)
		}
		total += s.Weight
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return &Wheel{segments: segs, total: total}, nil
}

// Segments returns the wheel layout
func (w *Wheel) Segments() []Segment {
	return w.segments
}

// Pick draws a segment index with probability proportional to its weight
func (w *Wheel) Pick(src vmath.Source) int {
	target := int(src.Float64() * float64(w.total))
	for i, s := range w.segments {
		if target < s.Weight {
			return i
		}
		target -= s.Weight
	}
	return len(w.segments) - 1
}

// Spin decides the outcome immediately and starts the pointer animation
func (w *Wheel) Spin(src vmath.Source, now time.Time) (int, error) {
	if w.spinning {
		return 0, ErrSpinning
	}
	n := len(w.segments)
	w.result = w.Pick(src)
	w.from = w.settled
	w.travel = constants.WheelMinTurns*n + ((w.result-w.from)%n+n)%n
	w.start = now
	w.spinning = true
	return w.result, nil
}

// Spinning reports whether an animation is in flight
func (w *Wheel) Spinning() bool {
	return w.spinning
}

// Update settles a finished spin, returning the landed segment exactly once
func (w *Wheel) Update(now time.Time) (Segment, bool) {
	if !w.spinning || now.Sub(w.start) < constants.WheelSpinDuration {
		return Segment{}, false
	}
	w.spinning = false
	w.settled = w.result
	return w.segments[w.result], true
}

// Highlight returns the segment under the pointer at now
func (w *Wheel) Highlight(now time.Time) int {
	if !w.spinning {
		return w.settled
	}
	p := float64(now.Sub(w.start)) / float64(constants.WheelSpinDuration)
	if p >= 1 {
		return w.result
	}
	if p < 0 {
		p = 0
	}
	// Cubic ease-out so the pointer slows into the result
	eased := 1 - math.Pow(1-p, 3)
	step := int(eased * float64(w.travel))
	return (w.from + step) % len(w.segments)
}
