package stream

import (
	"errors"
	"log"
)

// A Sink displays frames.
type Sink interface {
	DrawFrame(f *Frame) error
}

// MultiSink draws each frame on every sink in turn.
type MultiSink []Sink

func (m MultiSink) DrawFrame(f *Frame) error {
	var errs []error
	for _, s := range m {
		if err := s.DrawFrame(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink logs a one line summary of every Every-th frame.
type LogSink struct {
	Every int

	count int
}

func (l *LogSink) DrawFrame(f *Frame) error {
	l.count++
	if l.Every > 1 && (l.count-1)%l.Every != 0 {
		return nil
	}

	points := 0
	for _, p := range f.Paths {
		points += len(p)
	}
	log.Printf("Frame %d: %d paths, %d points, stroke %s", l.count, len(f.Paths), points, f.Stroke().Hex())
	return nil
}
