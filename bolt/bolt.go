// Package bolt generates animated lightning bolts: a polyline between two fixed endpoints,
// recursively subdivided once and wiggled every frame.
package bolt

// A PathSink draws an ordered sequence of points as one connected, unfilled path.
// The slice is only valid for the duration of the call.
type PathSink interface {
	DrawPath(points []Vec) error
}

// A Bolt is one animated lightning line between two fixed endpoints.
type Bolt struct {
	Start Vec
	End   Vec

	root    *RecursivePolyline
	scratch []Vec
}

// New builds the whole subdivision tree for a bolt from start to end.
func New(start, end Vec, g Geometry, r Rand) (*Bolt, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNilRand
	}

	b := new(Bolt)
	b.Start = start
	b.End = end

	baseline := (start.Y + end.Y) / 2
	b.root = newPolyline(start, end, baseline, 0, g, r)
	b.scratch = make([]Vec, 0, b.root.Len()+2)

	return b, nil
}

// Root returns the top segment of the tree.
func (b *Bolt) Root() *RecursivePolyline {
	return b.root
}

// Nodes returns the number of segments in the tree.
func (b *Bolt) Nodes() int {
	return b.root.Count()
}

// Update moves every point to its position at time t.
func (b *Bolt) Update(t float64) {
	b.root.UpdatePoints(t)
}

// Path returns the bolt's current shape from Start to End. The returned slice is reused by
// the next call to Path or Render.
func (b *Bolt) Path() []Vec {
	path := append(b.scratch[:0], b.Start)
	path = b.root.Flatten(path)
	path = append(path, b.End)
	b.scratch = path
	return path
}

// Render animates the bolt to time t and draws it as a single stroke.
func (b *Bolt) Render(t float64, sink PathSink) error {
	b.Update(t)
	return sink.DrawPath(b.Path())
}
