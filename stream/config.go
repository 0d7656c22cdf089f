package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledbolt/bolt"
	"github.com/matt-g-everett/ledbolt/util"
	"gopkg.in/yaml.v2"
)

// Sink names accepted in RenderConfig.Sink.
const (
	SinkTerminal = "terminal"
	SinkMqtt     = "mqtt"
	SinkHTTP     = "http"
	SinkLog      = "log"
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Render   RenderConfig   `yaml:"render"`
	Geometry GeometryConfig `yaml:"geometry"`
	Bolts    []BoltConfig   `yaml:"bolts"`
	Style    StyleConfig    `yaml:"style"`
}

type RenderConfig struct {
	Sink    string  `yaml:"sink"`
	FrameMs int64   `yaml:"frameMs"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	Listen  string  `yaml:"listen"`
}

type GeometryConfig struct {
	bolt.Geometry `yaml:",inline"`

	// Seed for the bolt shapes. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// BoltConfig holds a bolt's fixed endpoints as [x, y] pairs.
type BoltConfig struct {
	Start []float64 `yaml:"start"`
	End   []float64 `yaml:"end"`
}

// Endpoints returns the bolt's start and end. Call Validate first.
func (b BoltConfig) Endpoints() (bolt.Vec, bolt.Vec) {
	return bolt.Vec{X: b.Start[0], Y: b.Start[1]}, bolt.Vec{X: b.End[0], Y: b.End[1]}
}

func (b BoltConfig) Validate() error {
	if len(b.Start) != 2 || len(b.End) != 2 {
		return fmt.Errorf("bolt endpoints must be [x, y] pairs, got %v and %v", b.Start, b.End)
	}
	return nil
}

type StyleConfig struct {
	Palette        []string `yaml:"palette"`
	CycleSecs      float64  `yaml:"cycleSecs"`
	TransitionSecs float64  `yaml:"transitionSecs"`
	Flicker        int      `yaml:"flicker"`
	MinBrightness  float64  `yaml:"minBrightness"`
}

// DefaultConfig describes a single horizontal bolt across the middle of a 500x500 canvas.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.ClientID = "ledbolt"
	c.Mqtt.Topics.Stream = "home/bolt/stream"

	c.Render = RenderConfig{
		Sink:    SinkTerminal,
		FrameMs: 16,
		Width:   500,
		Height:  500,
		Speed:   1,
		Listen:  ":3000",
	}
	c.Geometry = GeometryConfig{Geometry: bolt.DefaultGeometry()}
	c.Bolts = []BoltConfig{{Start: []float64{0, 250}, End: []float64{500, 250}}}
	c.Style = StyleConfig{
		Palette:        []string{"#00c8ff", "white"},
		CycleSecs:      10,
		TransitionSecs: 5,
		Flicker:        48,
		MinBrightness:  0.6,
	}
	return c
}

// LoadConfig reads a YAML config file over the defaults and validates all of it.
func LoadConfig(path string) (Config, error) {
	c, err := decodeConfig(path)
	if err != nil {
		return c, err
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func decodeConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error

	if err := c.Geometry.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Bolts) == 0 {
		errs = append(errs, errors.New("no bolts configured"))
	}
	for i, b := range c.Bolts {
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("bolt %d: %w", i, err))
		}
	}

	switch c.Render.Sink {
	case SinkTerminal, SinkMqtt, SinkHTTP, SinkLog:
	default:
		errs = append(errs, fmt.Errorf("unknown sink %q", c.Render.Sink))
	}
	if c.Render.FrameMs <= 0 {
		errs = append(errs, fmt.Errorf("frameMs must be positive, got %d", c.Render.FrameMs))
	}
	if c.Render.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Render.Speed))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must have positive size, got %vx%v", c.Render.Width, c.Render.Height))
	}

	if err := c.Style.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s StyleConfig) Validate() error {
	if _, err := s.Colours(); err != nil {
		return err
	}
	if s.MinBrightness < 0 || s.MinBrightness > 1 {
		return fmt.Errorf("minBrightness must be within [0, 1], got %v", s.MinBrightness)
	}
	if s.Flicker < 0 {
		return fmt.Errorf("flicker must not be negative, got %d", s.Flicker)
	}
	return nil
}

// Colours parses the palette. An empty palette strokes in white.
func (s StyleConfig) Colours() ([]colorful.Color, error) {
	if len(s.Palette) == 0 {
		c, _ := util.ParseColour("white")
		return []colorful.Color{c}, nil
	}

	colours := make([]colorful.Color, 0, len(s.Palette))
	for _, p := range s.Palette {
		c, err := util.ParseColour(p)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	return colours, nil
}
