package stream

import (
	"log"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledbolt/util"
)

// Controller styles the frames of an animation. It cycles the stroke colour through a
// palette with cross-fades and modulates brightness with a flicker table.
type Controller struct {
	animation Animation
	rand      *rand.Rand

	frameMs             int64
	frame               int
	palette             []colorful.Color
	current             int
	next                int
	lastCycleMs         int64
	runtimeMs           int64
	cycleMs             int64
	transition          float64
	transitionIncrement float64

	lut           []float64
	minBrightness float64
}

// NewController creates an instance of a Controller.
func NewController(animation Animation, frameMs int64, style StyleConfig, r *rand.Rand) (*Controller, error) {
	c := new(Controller)
	c.animation = animation
	c.frameMs = frameMs
	c.rand = r
	c.next = -1

	if err := c.SetStyle(style); err != nil {
		return nil, err
	}
	return c, nil
}

// SetStyle replaces the palette and flicker settings. Any running transition is dropped.
// The colour on display is kept when the new palette has it, and the cycle restarts.
func (c *Controller) SetStyle(style StyleConfig) error {
	if err := style.Validate(); err != nil {
		return err
	}
	palette, _ := style.Colours()

	current := 0
	if c.palette != nil {
		shown := c.palette[c.current].Hex()
		for i, p := range palette {
			if p.Hex() == shown {
				current = i
				break
			}
		}
	}

	c.palette = palette
	c.current = current
	c.next = -1
	c.transition = 0
	c.lastCycleMs = c.runtimeMs

	c.cycleMs = int64(style.CycleSecs * 1000)
	frameRate := 1000.0 / float64(c.frameMs)
	if style.TransitionSecs > 0 {
		c.transitionIncrement = 1.0 / (frameRate * style.TransitionSecs)
	} else {
		c.transitionIncrement = 1.0
	}

	c.lut = util.GenerateLut(style.Flicker)
	c.minBrightness = style.MinBrightness

	return nil
}

// CalculateFrame renders the wrapped animation and applies the current colour and brightness.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	f := c.animation.CalculateFrame(runtimeMs)
	c.runtimeMs = runtimeMs

	if c.next < 0 && c.cycleMs > 0 && runtimeMs-c.lastCycleMs >= c.cycleMs {
		c.cycleColour()
		c.lastCycleMs = runtimeMs
	}

	if c.next >= 0 {
		c.transition += c.transitionIncrement
		if c.transition >= 1.0 {
			c.current = c.next
			c.next = -1
			c.transition = 0.0
			f.Colour = c.palette[c.current]
		} else {
			f.Colour = c.palette[c.current].BlendHcl(c.palette[c.next], ease.InOutQuad(c.transition)).Clamped()
		}
	} else {
		f.Colour = c.palette[c.current]
	}

	f.Brightness = c.brightness()
	c.frame++

	return f
}

func (c *Controller) brightness() float64 {
	if len(c.lut) == 0 {
		return 1.0
	}
	v := c.lut[c.frame%len(c.lut)]
	return c.minBrightness + (1.0-c.minBrightness)*v
}

// cycleColour starts a fade to a palette colour different from the current one.
func (c *Controller) cycleColour() {
	if len(c.palette) < 2 {
		return
	}

	for {
		next := c.rand.Intn(len(c.palette))
		if next != c.current {
			c.next = next
			break
		}
	}

	log.Printf("Fading to %s", c.palette[c.next].Hex())
}
