// Package term draws frames on a terminal with tcell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matt-g-everett/ledbolt/bolt"
	"github.com/matt-g-everett/ledbolt/stream"
)

// Screen is a stream.Sink that rasterises frame paths into terminal cells.
type Screen struct {
	screen tcell.Screen
}

// New initialises the terminal. Call Fini to restore it.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an initialised tcell screen.
func NewWithScreen(screen tcell.Screen) *Screen {
	s := new(Screen)
	s.screen = screen
	return s
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

// HandleEvents blocks until the user quits with q, Esc or Ctrl-C, then calls quit. It also
// returns once the screen is finalised.
func (s *Screen) HandleEvents(quit func()) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// DrawFrame scales the frame's canvas onto the whole terminal and draws every path.
func (s *Screen) DrawFrame(f *stream.Frame) error {
	s.screen.Clear()

	w, h := s.screen.Size()
	if w == 0 || h == 0 || f.Width <= 0 || f.Height <= 0 {
		s.screen.Show()
		return nil
	}

	r, g, b := f.Stroke().RGB255()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))

	project := func(v bolt.Vec) (int, int) {
		x := int(v.X/f.Width*float64(w-1) + 0.5)
		y := int(v.Y/f.Height*float64(h-1) + 0.5)
		return x, y
	}

	for _, path := range f.Paths {
		if len(path) == 1 {
			x, y := project(path[0])
			s.set(x, y, '•', style, w, h)
			continue
		}
		for i := 0; i+1 < len(path); i++ {
			x0, y0 := project(path[i])
			x1, y1 := project(path[i+1])
			s.drawLine(x0, y0, x1, y1, style, w, h)
		}
	}

	s.screen.Show()
	return nil
}

func (s *Screen) set(x, y int, glyph rune, style tcell.Style, w, h int) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, glyph, nil, style)
}

// drawLine plots a segment with Bresenham's algorithm.
func (s *Screen) drawLine(x0, y0, x1, y1 int, style tcell.Style, w, h int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	glyph := segmentGlyph(dx, dy, sx == sy)
	err := dx - dy

	for {
		s.set(x0, y0, glyph, style, w, h)

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// segmentGlyph picks a box-drawing rune that follows the segment's slope. Terminal rows grow
// downwards, so a segment moving right and down is a backslash.
func segmentGlyph(dx, dy int, falling bool) rune {
	switch {
	case dy*2 < dx:
		return '─'
	case dx*2 < dy:
		return '│'
	case falling:
		return '╲'
	default:
		return '╱'
	}
}
