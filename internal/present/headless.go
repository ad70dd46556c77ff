package present

import (
	"context"
	"fmt"
	"time"

	"seehuhn.de/go/scanline"
)

// RunHeadless runs the scene without opening a window.  One frame is
// updated and drawn per tick.  RunHeadless returns when the frame budget
// is used up or ctx is cancelled.
func RunHeadless(ctx context.Context, cfg Config, scene Scene) error {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	fb := scanline.NewFramebuffer(cfg.Width, cfg.Height)

	d := time.Second / time.Duration(cfg.TPS)
	if d <= 0 {
		return fmt.Errorf("invalid tick rate %d", cfg.TPS)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	cfg.Logger.Debug("running headless",
		"width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS, "frames", cfg.Frames)

	frame := 0
	for cfg.Frames == 0 || frame < cfg.Frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		if err := scene.Update(frame); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		scene.Draw(fb)
		frame++
	}

	return finish(cfg, fb, frame)
}

// finish writes the last frame, if requested.
func finish(cfg Config, fb *scanline.Framebuffer, frames int) error {
	cfg.Logger.Info("done", "frames", frames)
	if cfg.Output == "" || frames == 0 {
		return nil
	}
	if err := SavePNG(cfg.Output, fb, cfg.Scale); err != nil {
		return err
	}
	cfg.Logger.Info("wrote image", "file", cfg.Output)
	return nil
}
