package bolt

// Rand is the random source used while building a tree. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// A RecursivePolyline is one segment of a bolt. It owns Parts wiggling points between
// Start and End, and one child segment per gap between them.
type RecursivePolyline struct {
	Start    Vec
	End      Vec
	Depth    int
	Points   []*Point
	Children []*RecursivePolyline
}

func newPolyline(start, end Vec, baseline float64, depth int, g Geometry, r Rand) *RecursivePolyline {
	p := new(RecursivePolyline)
	p.Start = start
	p.End = end
	p.Depth = depth
	p.Points = generatePoints(start, end, baseline, g.Parts, r)

	if depth >= g.MaxDepth {
		return p
	}

	p.Children = make([]*RecursivePolyline, 0, g.Parts+1)
	previous := start
	for _, point := range p.Points {
		p.Children = append(p.Children, newPolyline(previous, point.Initial, baseline, depth+1, g, r))
		previous = point.Initial
	}
	p.Children = append(p.Children, newPolyline(previous, end, baseline, depth+1, g, r))

	return p
}

// generatePoints spaces count points evenly in x between start and end. Every point sits on
// the baseline; vertical shape comes only from animation.
func generatePoints(start, end Vec, baseline float64, count int, r Rand) []*Point {
	points := make([]*Point, count)
	for i := range points {
		x := start.X + (end.X-start.X)*float64(i+1)/float64(count+1)

		waveform := Cosine
		if r.Float64() < 0.5 {
			waveform = Sine
		}
		amplitude := r.Float64()

		points[i] = NewPoint(Vec{x, baseline}, amplitude, waveform)
	}
	return points
}

// UpdatePoints moves every point in the subtree to its position at time t.
func (p *RecursivePolyline) UpdatePoints(t float64) *RecursivePolyline {
	for _, point := range p.Points {
		point.Update(t)
	}
	for _, child := range p.Children {
		child.UpdatePoints(t)
	}
	return p
}

// Flatten appends the current positions of the subtree's points to dst in left-to-right
// order: each child's points come before the point that closes its span.
func (p *RecursivePolyline) Flatten(dst []Vec) []Vec {
	if len(p.Children) == 0 {
		for _, point := range p.Points {
			dst = append(dst, point.Current)
		}
		return dst
	}

	for i, child := range p.Children {
		dst = child.Flatten(dst)
		if i < len(p.Points) {
			dst = append(dst, p.Points[i].Current)
		}
	}
	return dst
}

// Walk visits the subtree in pre-order. Returning false from fn skips the node's children.
func (p *RecursivePolyline) Walk(fn func(*RecursivePolyline) bool) {
	if !fn(p) {
		return
	}
	for _, child := range p.Children {
		child.Walk(fn)
	}
}

// Count returns the number of segments in the subtree.
func (p *RecursivePolyline) Count() int {
	n := 0
	p.Walk(func(*RecursivePolyline) bool {
		n++
		return true
	})
	return n
}

// Len returns the number of points Flatten produces.
func (p *RecursivePolyline) Len() int {
	n := 0
	p.Walk(func(node *RecursivePolyline) bool {
		n += len(node.Points)
		return true
	})
	return n
}
