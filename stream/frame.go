package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledbolt/bolt"
)

var errShortFrame = errors.New("frame: truncated data")

// Frame holds the bolt paths to draw for one animation step, all stroked in one colour.
type Frame struct {
	Width      float64
	Height     float64
	Colour     colorful.Color
	Brightness float64
	Paths      [][]bolt.Vec
}

// NewFrame creates an empty Frame over a canvas of the given size.
func NewFrame(width, height float64) *Frame {
	f := new(Frame)
	f.Width = width
	f.Height = height
	f.Colour = colorful.Color{R: 1, G: 1, B: 1}
	f.Brightness = 1
	return f
}

// DrawPath records a copy of points as a new path.
func (f *Frame) DrawPath(points []bolt.Vec) error {
	f.Paths = append(f.Paths, append([]bolt.Vec(nil), points...))
	return nil
}

// Stroke returns the colour to draw paths with, dimmed by Brightness.
func (f *Frame) Stroke() colorful.Color {
	b := math.Max(0, math.Min(1, f.Brightness))
	return colorful.Color{R: f.Colour.R * b, G: f.Colour.G * b, B: f.Colour.B * b}.Clamped()
}

// headerSize is the path count followed by the RGB stroke.
const headerSize = 4 + 3

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if uint64(len(f.Paths)) > math.MaxUint32 {
		return nil, fmt.Errorf("frame: %d paths exceeds %d", len(f.Paths), uint32(math.MaxUint32))
	}

	size := headerSize
	for _, p := range f.Paths {
		if uint64(len(p)) > math.MaxUint32 {
			return nil, fmt.Errorf("frame: path of %d points exceeds %d", len(p), uint32(math.MaxUint32))
		}
		size += 4 + len(p)*8
	}

	data = make([]byte, 0, size)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(f.Paths)))
	r, g, b := f.Stroke().RGB255()
	data = append(data, r, g, b)

	for _, p := range f.Paths {
		data = binary.LittleEndian.AppendUint32(data, uint32(len(p)))
		for _, v := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(v.X)))
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(v.Y)))
		}
	}

	return data, nil
}

// UnmarshalBinary restores the paths and stroke colour written by MarshalBinary. The canvas
// size is not part of the encoding and is left untouched.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return errShortFrame
	}

	count := uint64(binary.LittleEndian.Uint32(data))
	f.Colour = colorful.Color{R: float64(data[4]) / 255, G: float64(data[5]) / 255, B: float64(data[6]) / 255}
	f.Brightness = 1
	data = data[headerSize:]

	// Every path needs at least its own length prefix.
	if count > uint64(len(data)/4) {
		return errShortFrame
	}

	f.Paths = make([][]bolt.Vec, 0, count)
	for i := uint64(0); i < count; i++ {
		if len(data) < 4 {
			return errShortFrame
		}
		n := uint64(binary.LittleEndian.Uint32(data))
		data = data[4:]
		if n > uint64(len(data)/8) {
			return errShortFrame
		}

		path := make([]bolt.Vec, n)
		for j := range path {
			x := math.Float32frombits(binary.LittleEndian.Uint32(data))
			y := math.Float32frombits(binary.LittleEndian.Uint32(data[4:]))
			path[j] = bolt.Vec{X: float64(x), Y: float64(y)}
			data = data[8:]
		}
		f.Paths = append(f.Paths, path)
	}

	return nil
}
