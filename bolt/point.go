package bolt

import "math"

// VerticalGain scales a point's vertical displacement relative to its horizontal one.
// Points move along a fixed direction instead of the segment normal.
const VerticalGain = 100.0

// Vec is a 2D coordinate.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Mul(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Lerp returns the point a fraction t of the way from v to o.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return v.Add(o.Sub(v).Mul(t))
}

// Waveform selects the periodic function that drives a Point.
type Waveform uint8

const (
	Sine Waveform = iota
	Cosine
)

// Eval returns the waveform's value at t, always within [-1, 1].
func (w Waveform) Eval(t float64) float64 {
	if w == Cosine {
		return math.Cos(t)
	}
	return math.Sin(t)
}

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Cosine:
		return "cosine"
	default:
		return "unknown"
	}
}

// A Point is a subdivision point that wiggles around its initial position over time.
type Point struct {
	Initial   Vec
	Current   Vec
	Amplitude float64
	Waveform  Waveform
}

// NewPoint creates a Point resting at its initial position.
func NewPoint(initial Vec, amplitude float64, waveform Waveform) *Point {
	p := new(Point)
	p.Initial = initial
	p.Current = initial
	p.Amplitude = amplitude
	p.Waveform = waveform
	return p
}

// Update moves the point to its position at time t.
func (p *Point) Update(t float64) *Point {
	offset := p.Amplitude * p.Waveform.Eval(t)

	p.Current.X = p.Initial.X + offset
	p.Current.Y = p.Initial.Y + VerticalGain*offset

	return p
}
