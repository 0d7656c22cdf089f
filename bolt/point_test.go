package bolt

import (
	"math"
	"testing"
)

func TestPointUpdate(t *testing.T) {
	p := NewPoint(Vec{10, 20}, 0.5, Sine)
	p.Update(math.Pi / 2)

	if math.Abs(p.Current.X-10.5) > 1e-9 {
		t.Errorf("Expected x 10.5, got %v", p.Current.X)
	}
	if math.Abs(p.Current.Y-70) > 1e-9 {
		t.Errorf("Expected y 70, got %v", p.Current.Y)
	}
	if p.Initial != (Vec{10, 20}) {
		t.Errorf("Initial position moved to %v", p.Initial)
	}

	p.Waveform = Cosine
	p.Update(0)
	if math.Abs(p.Current.Y-70) > 1e-9 {
		t.Errorf("Expected cosine y 70 at t=0, got %v", p.Current.Y)
	}
}

func TestPointDisplacementBounded(t *testing.T) {
	for _, w := range []Waveform{Sine, Cosine} {
		p := NewPoint(Vec{0, 250}, 0.73, w)
		limit := VerticalGain * p.Amplitude

		for i := -500; i <= 500; i++ {
			tm := float64(i) * 0.37
			p.Update(tm)
			dy := p.Current.Y - p.Initial.Y
			if dy < -limit-1e-9 || dy > limit+1e-9 {
				t.Fatalf("%v at t=%v: dy %v outside ±%v", w, tm, dy, limit)
			}
			if dx := math.Abs(p.Current.X - p.Initial.X); dx > p.Amplitude+1e-9 {
				t.Fatalf("%v at t=%v: dx %v exceeds amplitude", w, tm, dx)
			}
		}
	}
}

func TestPointUpdateAcceptsAnyTime(t *testing.T) {
	p := NewPoint(Vec{1, 1}, 0.25, Sine)
	for _, tm := range []float64{0, -1e9, 1e15, math.SmallestNonzeroFloat64} {
		p.Update(tm)
		if math.IsNaN(p.Current.X) || math.IsNaN(p.Current.Y) {
			t.Errorf("Update(%v) produced NaN", tm)
		}
	}
}

func TestVecLerp(t *testing.T) {
	got := Vec{0, 10}.Lerp(Vec{100, 30}, 0.25)
	if got != (Vec{25, 15}) {
		t.Errorf("Expected {25 15}, got %v", got)
	}
}

func TestWaveformString(t *testing.T) {
	if Sine.String() != "sine" || Cosine.String() != "cosine" {
		t.Errorf("Unexpected names %q %q", Sine, Cosine)
	}
}
