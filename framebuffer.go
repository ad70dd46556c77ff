// seehuhn.de/go/scanline - a 2D scan-conversion library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanline

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Framebuffer is an in-memory image of packed 32-bit pixels, stored in
// row-major order.  The channel layout of the pixel values is chosen by
// the caller; pixel values are copied into the buffer verbatim.
//
// Drawing methods take integer buffer coordinates.  No clipping is
// performed: coordinates outside the buffer are a programming error and
// cause a panic.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	width  int
	height int
	pix    []uint32
}

// NewFramebuffer allocates a zero-filled framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("scanline: invalid framebuffer size %dx%d", width, height))
	}
	Logger().Debug("allocating framebuffer", "width", width, "height", height)
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the number of pixels per row.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the number of rows.
func (fb *Framebuffer) Height() int { return fb.height }

// Bounds returns the rectangle covered by the framebuffer.
func (fb *Framebuffer) Bounds() rect.Rect {
	return rect.Rect{URx: float64(fb.width), URy: float64(fb.height)}
}

// Slice returns the pixel data, Width*Height values in row-major order,
// top to bottom and left to right.  The slice aliases the framebuffer
// memory.
func (fb *Framebuffer) Slice() []uint32 {
	return fb.pix
}

// At returns the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) uint32 {
	fb.mustContain(Pt(x, y))
	return fb.pix[y*fb.width+x]
}

// Set sets the pixel at (x, y).
func (fb *Framebuffer) Set(x, y int, color uint32) {
	fb.mustContain(Pt(x, y))
	fb.pix[y*fb.width+x] = color
}

// Clear sets every pixel to color.
func (fb *Framebuffer) Clear(color uint32) {
	for i := range fb.pix {
		fb.pix[i] = color
	}
}

// FillRect fills the size.X by size.Y rectangle with top-left corner
// origin.  The rectangle must lie inside the framebuffer.
func (fb *Framebuffer) FillRect(origin, size Point[int], color uint32) {
	if size.X < 0 || size.Y < 0 {
		panic(fmt.Sprintf("scanline: invalid rectangle size %v", size))
	}
	if size.X == 0 || size.Y == 0 {
		return
	}
	fb.mustContain(origin)
	fb.mustContain(origin.Add(size).Sub(Pt(1, 1)))

	for y := origin.Y; y < origin.Y+size.Y; y++ {
		start := fb.width*y + origin.X
		run := fb.pix[start : start+size.X]
		for i := range run {
			run[i] = color
		}
	}
}

// DrawLine draws the line from p1 to p2, including both endpoints.
func (fb *Framebuffer) DrawLine(p1, p2 Point[int], color uint32) {
	fb.mustContain(p1)
	fb.mustContain(p2)
	fb.drawLine(p1, p2, color)
}

func (fb *Framebuffer) drawLine(p1, p2 Point[int], color uint32) {
	for p := range Line(p1, p2) {
		fb.pix[fb.width*p.Y+p.X] = color
	}
}

// DrawTriangle draws the outline of t.
func (fb *Framebuffer) DrawTriangle(t Triangle[int], color uint32) {
	fb.mustContainTriangle(t)
	fb.drawLine(t[0], t[1], color)
	fb.drawLine(t[1], t[2], color)
	fb.drawLine(t[2], t[0], color)
}

// FillTriangle fills the interior of t, including the boundary pixels.
// Triangles of zero height leave the framebuffer unchanged.
func (fb *Framebuffer) FillTriangle(t Triangle[int], color uint32) {
	fb.mustContainTriangle(t)
	ScanTriangle(t, func(y, x0, x1 int) {
		start := fb.width * y
		run := fb.pix[start+x0 : start+x1+1]
		for i := range run {
			run[i] = color
		}
	})
}

func (fb *Framebuffer) mustContainTriangle(t Triangle[int]) {
	for _, p := range t {
		fb.mustContain(p)
	}
}

// mustContain panics if p is outside the framebuffer.
// All pixels touched by a line or triangle lie in the bounding box of its
// vertices, so checking the vertices is enough.
func (fb *Framebuffer) mustContain(p Point[int]) {
	if p.X < 0 || p.X >= fb.width || p.Y < 0 || p.Y >= fb.height {
		panic(fmt.Sprintf("scanline: point %v outside %dx%d framebuffer",
			p, fb.width, fb.height))
	}
}
