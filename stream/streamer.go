package stream

import (
	"context"
	"log"
	"time"
)

// Streamer drives an Animation at a fixed frame rate and hands each frame to a Sink.
type Streamer struct {
	animation Animation
	sink      Sink
	frameMs   int64
	runtimeMs int64
	reload    <-chan Config
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(animation Animation, sink Sink, frameMs int64) *Streamer {
	s := new(Streamer)
	s.animation = animation
	s.sink = sink
	s.frameMs = frameMs
	return s
}

// Watch applies the style of every config received on reload between frames.
func (s *Streamer) Watch(reload <-chan Config) {
	s.reload = reload
}

// Runtime returns the runtime of the next frame.
func (s *Streamer) Runtime() int64 {
	return s.runtimeMs
}

// SendFrame renders the frame for the current runtime, advances the runtime by one frame and
// draws the frame.
func (s *Streamer) SendFrame() error {
	f := s.animation.CalculateFrame(s.runtimeMs)
	s.runtimeMs += s.frameMs
	return s.sink.DrawFrame(f)
}

// Run sends frames until ctx is cancelled. Sink errors are logged and the stream carries on.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(time.Duration(s.frameMs) * time.Millisecond)
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-s.reload:
			if !ok {
				s.reload = nil
				continue
			}
			s.applyStyle(c.Style)
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				log.Printf("Frame at %dms: %v", s.runtimeMs-s.frameMs, err)
			}
		}
	}
}

func (s *Streamer) applyStyle(style StyleConfig) {
	styler, ok := s.animation.(Styler)
	if !ok {
		return
	}
	if err := styler.SetStyle(style); err != nil {
		log.Printf("Style rejected: %v", err)
		return
	}
	log.Println("Style reloaded")
}
