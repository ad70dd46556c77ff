// Command scanview shows the scan-conversion demo scene: a triangle outline
// and a rotating filled triangle.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/scanline"
	"seehuhn.de/go/scanline/internal/present"
)

const (
	black = 0xFF000000
	white = 0xFFFFFFFF
	blue  = 0xFF3080FF
)

func main() {
	var cfg present.Config
	var headless, verbose bool
	var speed float64
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Width, "width", 800, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Height, "height", 600, "Framebuffer height in pixels.")
	flag.IntVar(&cfg.TPS, "tps", 60, "Updates per second.")
	flag.IntVar(&cfg.Scale, "scale", 1, "Magnification of the window and the output image.")
	flag.IntVar(&cfg.Frames, "frames", 0, "Stop after N frames (0 = run until interrupted).")
	flag.StringVar(&cfg.Output, "o", "", "Write the last frame to this PNG file.")
	flag.Float64Var(&speed, "speed", 1.5, "Rotation speed in degrees per frame.")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scanline.SetLogger(logger)
	cfg.Logger = logger
	cfg.Title = "scanview"

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scene := &demo{speed: speed}
	var err error
	if headless {
		err = present.RunHeadless(ctx, cfg, scene)
	} else {
		err = present.RunWindow(ctx, cfg, scene)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// outline is the fixed triangle of the demo scene.
var outline = scanline.Triangle[int]{{50, 50}, {100, 400}, {500, 500}}

// spinner is rotated about the origin and then moved to its place on the
// screen.
var spinner = scanline.Triangle[float64]{{0, -80}, {70, 40}, {-70, 40}}

type demo struct {
	speed float64
	angle float64
}

func (d *demo) Update(frame int) error {
	d.angle = float64(frame) * d.speed
	return nil
}

func (d *demo) Draw(fb *scanline.Framebuffer) {
	fb.Clear(black)

	// The scene is laid out for 800x600; skip shapes which do not fit.
	if fits(fb, outline) {
		fb.DrawTriangle(outline, white)
	}

	m := matrix.RotateDeg(d.angle)
	m[4], m[5] = 620, 160
	t := scanline.ConvertTriangle[int](spinner.Transform(m))
	if fits(fb, t) {
		fb.FillTriangle(t, blue)
		fb.DrawTriangle(t, white)
	}
}

func fits(fb *scanline.Framebuffer, t scanline.Triangle[int]) bool {
	for _, p := range t {
		if p.X < 0 || p.Y < 0 || p.X >= fb.Width() || p.Y >= fb.Height() {
			return false
		}
	}
	return true
}
