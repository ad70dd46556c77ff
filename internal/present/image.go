package present

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/scanline"
)

// ToRGBA converts the packed 0xAARRGGBB pixels of fb to an image.
// The alpha channel is ignored and all pixels are opaque.
func ToRGBA(fb *scanline.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	copyPixels(img.Pix, fb.Slice())
	return img
}

func copyPixels(dst []byte, src []uint32) {
	for i, c := range src {
		j := 4 * i
		dst[j+0] = byte(c >> 16)
		dst[j+1] = byte(c >> 8)
		dst[j+2] = byte(c)
		dst[j+3] = 0xFF
	}
}

// WritePNG encodes fb as a PNG image, magnified by the given integer
// factor.
func WritePNG(w io.Writer, fb *scanline.Framebuffer, scale int) error {
	var img image.Image = ToRGBA(fb)
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}

// SavePNG writes fb to the named file.
func SavePNG(name string, fb *scanline.Framebuffer, scale int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = WritePNG(f, fb, scale)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
