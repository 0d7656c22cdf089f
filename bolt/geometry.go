package bolt

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParts = errors.New("bolt: parts must be positive")
	ErrInvalidDepth = errors.New("bolt: max depth must not be negative")
	ErrTooManyNodes = errors.New("bolt: tree exceeds node limit")
	ErrNilRand      = errors.New("bolt: nil random source")
)

// Geometry describes the shape of a bolt's subdivision tree.
type Geometry struct {
	// Parts is the number of subdivision points per segment. Each segment has Parts+1 children.
	Parts int `yaml:"parts"`

	// MaxDepth is the depth of the leaves; the root segment is depth 0.
	MaxDepth int `yaml:"maxDepth"`

	// MaxNodes caps the tree size. Zero or less disables the cap.
	MaxNodes int `yaml:"maxNodes"`
}

// DefaultGeometry returns a three-way split four levels deep.
func DefaultGeometry() Geometry {
	return Geometry{
		Parts:    3,
		MaxDepth: 4,
		MaxNodes: 1 << 21,
	}
}

// NodeCount returns the number of segments in a tree of this geometry, saturating at
// math.MaxInt.
func (g Geometry) NodeCount() int {
	if g.Parts <= 0 || g.MaxDepth < 0 {
		return 0
	}

	fan := g.Parts + 1
	total, level := 1, 1
	for i := 0; i < g.MaxDepth; i++ {
		if level > math.MaxInt/fan {
			return math.MaxInt
		}
		level *= fan
		if total > math.MaxInt-level {
			return math.MaxInt
		}
		total += level
	}

	return total
}

// Validate rejects geometries that cannot be built.
func (g Geometry) Validate() error {
	if g.Parts <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidParts, g.Parts)
	}
	if g.MaxDepth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, g.MaxDepth)
	}
	if g.MaxNodes > 0 {
		if n := g.NodeCount(); n > g.MaxNodes {
			return fmt.Errorf("%w: %d parts at depth %d needs %d nodes, limit %d",
				ErrTooManyNodes, g.Parts, g.MaxDepth, n, g.MaxNodes)
		}
	}
	return nil
}
