package util

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// GenerateLut builds a table that eases up from 0 towards 1 over the first half and back
// down over the second.
func GenerateLut(length int) []float64 {
	if length <= 0 {
		return nil
	}

	lut := make([]float64, length)
	half := length / 2
	if half == 0 {
		return lut
	}

	increment := 1.0 / float64(half)
	for i, j := 0, length-1; i < half; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}

// ParseColour accepts "#rrggbb" or an SVG colour name such as "white" or "deepskyblue".
func ParseColour(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("colour %q: %w", s, err)
		}
		return c, nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("colour %q: unknown name", s)
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}
