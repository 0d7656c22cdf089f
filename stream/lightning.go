package stream

import (
	"log"
	"math/rand"
	"time"

	"github.com/matt-g-everett/ledbolt/bolt"
)

// NewRand returns the random source for bolt shapes. A zero seed uses the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Lightning is an Animation that wiggles a fixed set of bolts.
type Lightning struct {
	bolts   []*bolt.Bolt
	width   float64
	height  float64
	frameMs int64
	speed   float64
}

// NewLightning builds every configured bolt up front.
func NewLightning(config Config, r bolt.Rand) (*Lightning, error) {
	l := new(Lightning)
	l.width = config.Render.Width
	l.height = config.Render.Height
	l.frameMs = config.Render.FrameMs
	l.speed = config.Render.Speed

	for _, bc := range config.Bolts {
		if err := bc.Validate(); err != nil {
			return nil, err
		}
		start, end := bc.Endpoints()
		b, err := bolt.New(start, end, config.Geometry.Geometry, r)
		if err != nil {
			return nil, err
		}
		l.bolts = append(l.bolts, b)
	}

	return l, nil
}

// Bolts returns the animated bolts.
func (l *Lightning) Bolts() []*bolt.Bolt {
	return l.bolts
}

// Time converts a runtime into animation time, measured in frames scaled by speed.
func (l *Lightning) Time(runtimeMs int64) float64 {
	return float64(runtimeMs) / float64(l.frameMs) * l.speed
}

// CalculateFrame renders every bolt at the given runtime.
func (l *Lightning) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(l.width, l.height)
	t := l.Time(runtimeMs)
	for i, b := range l.bolts {
		if err := b.Render(t, f); err != nil {
			log.Printf("Bolt %d: %v", i, err)
		}
	}
	return f
}
