// Command boltview shows the bolts in a desktop window.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/matt-g-everett/ledbolt/stream"
)

const strokeWidth = 1.5

// viewer is both the ebiten game and the stream's sink. ebiten's update loop drives the
// streamer one frame per tick.
type viewer struct {
	streamer *stream.Streamer
	frame    *stream.Frame
	width    int
	height   int
}

func (v *viewer) DrawFrame(f *stream.Frame) error {
	v.frame = f
	return nil
}

func (v *viewer) Update() error {
	return v.streamer.SendFrame()
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if v.frame == nil {
		return
	}

	r, g, b := v.frame.Stroke().RGB255()
	clr := color.RGBA{R: r, G: g, B: b, A: 0xff}
	for _, p := range v.frame.Paths {
		for i := 0; i+1 < len(p); i++ {
			vector.StrokeLine(screen,
				float32(p[i].X), float32(p[i].Y),
				float32(p[i+1].X), float32(p[i+1].Y),
				strokeWidth, clr, true)
		}
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	configPath := flag.String("config", "", "YAML config file. Defaults are used when empty.")
	flag.Parse()

	config := stream.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = stream.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Config: %v", err)
		}
	}

	lightning, err := stream.NewLightning(config, stream.NewRand(config.Geometry.Seed))
	if err != nil {
		log.Fatalf("Bolts: %v", err)
	}
	controller, err := stream.NewController(lightning, config.Render.FrameMs, config.Style, stream.NewRand(0))
	if err != nil {
		log.Fatalf("Style: %v", err)
	}

	v := new(viewer)
	v.width = int(config.Render.Width)
	v.height = int(config.Render.Height)
	v.streamer = stream.NewStreamer(controller, v, config.Render.FrameMs)

	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle("boltview")
	ebiten.SetTPS(max(1, int(1000/config.Render.FrameMs)))

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
