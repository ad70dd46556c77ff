// Package present shows the contents of a framebuffer, either in a window
// or by writing PNG files.
package present

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/scanline"
)

// Config controls how a scene is presented.
type Config struct {
	Width  int    // framebuffer width in pixels
	Height int    // framebuffer height in pixels
	TPS    int    // updates per second
	Scale  int    // window and PNG magnification
	Frames int    // stop after this many frames (0 = run until cancelled)
	Output string // if non-empty, the last frame is written to this PNG file
	Title  string // window title

	Logger *slog.Logger
}

// A Scene is advanced and drawn once per tick.
type Scene interface {
	// Update advances the scene to the given frame number.
	Update(frame int) error

	// Draw renders the current state into fb.
	Draw(fb *scanline.Framebuffer)
}

func (cfg Config) withDefaults() (Config, error) {
	if cfg.Width == 0 {
		cfg.Width = 800
	}
	if cfg.Height == 0 {
		cfg.Height = 600
	}
	if cfg.TPS == 0 {
		cfg.TPS = 60
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	if cfg.Title == "" {
		cfg.Title = "scanview"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	switch {
	case cfg.Width < 0 || cfg.Height < 0:
		return cfg, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	case cfg.TPS < 0:
		return cfg, fmt.Errorf("invalid tick rate %d", cfg.TPS)
	case cfg.Scale < 0:
		return cfg, fmt.Errorf("invalid scale %d", cfg.Scale)
	case cfg.Frames < 0:
		return cfg, fmt.Errorf("invalid frame count %d", cfg.Frames)
	}
	return cfg, nil
}
