//go:build cgo

package present

import (
	"context"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/scanline"
)

// RunWindow opens a window which shows the scene, magnified by cfg.Scale.
// It blocks until the window is closed, the frame budget is used up, or ctx
// is cancelled.
func RunWindow(ctx context.Context, cfg Config, scene Scene) error {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	g := &game{
		ctx:   ctx,
		cfg:   cfg,
		scene: scene,
		fb:    scanline.NewFramebuffer(cfg.Width, cfg.Height),
		rgba:  image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return finish(cfg, g.fb, g.frame)
}

type game struct {
	ctx   context.Context
	cfg   Config
	scene Scene

	fb    *scanline.Framebuffer
	rgba  *image.RGBA
	img   *ebiten.Image
	frame int
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.cfg.Frames > 0 && g.frame >= g.cfg.Frames {
		return ebiten.Termination
	}
	if err := g.scene.Update(g.frame); err != nil {
		return err
	}
	g.frame++
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.cfg.Width, g.cfg.Height)
	}
	g.scene.Draw(g.fb)
	copyPixels(g.rgba.Pix, g.fb.Slice())
	g.img.WritePixels(g.rgba.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
