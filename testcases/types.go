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

// Package testcases defines the geometry used to test and compare the
// rasterizer.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scanline"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // what to draw
	CTM    matrix.Matrix // applied to the vertices (zero-value means no transform)
}

// Operation is the drawing operation of a test case.
type Operation interface {
	isOperation()
}

// Line draws the line from P1 to P2.
type Line struct {
	P1, P2 scanline.Point[int]
}

func (Line) isOperation() {}

// Outline draws the three edges of a triangle.
type Outline struct {
	T scanline.Triangle[int]
}

func (Outline) isOperation() {}

// Fill fills a triangle.
type Fill struct {
	T scanline.Triangle[int]
}

func (Fill) isOperation() {}

// Rect fills an axis-aligned rectangle.
// The CTM is not applied to rectangles.
type Rect struct {
	Origin, Size scanline.Point[int]
}

func (Rect) isOperation() {}

// Render draws the test case into fb.
func (tc TestCase) Render(fb *scanline.Framebuffer, color uint32) {
	switch op := tc.Op.(type) {
	case Line:
		fb.DrawLine(tc.point(op.P1), tc.point(op.P2), color)
	case Outline:
		fb.DrawTriangle(tc.triangle(op.T), color)
	case Fill:
		fb.FillTriangle(tc.triangle(op.T), color)
	case Rect:
		fb.FillRect(op.Origin, op.Size, color)
	}
}

// Vertices returns the vertices of the test case geometry in device
// coordinates, after the CTM has been applied.  For rectangles, the
// top-left and bottom-right pixels are returned.
func (tc TestCase) Vertices() []scanline.Point[int] {
	switch op := tc.Op.(type) {
	case Line:
		return []scanline.Point[int]{tc.point(op.P1), tc.point(op.P2)}
	case Outline:
		t := tc.triangle(op.T)
		return t[:]
	case Fill:
		t := tc.triangle(op.T)
		return t[:]
	case Rect:
		if op.Size.X == 0 || op.Size.Y == 0 {
			return nil
		}
		return []scanline.Point[int]{op.Origin, op.Origin.Add(op.Size).Sub(scanline.Pt(1, 1))}
	}
	return nil
}

// Path returns the geometry of the test case as a path in device
// coordinates.  Vertices are placed at pixel centres, rectangles follow the
// pixel boundaries.  Lines give an open path, all other shapes are closed.
func (tc TestCase) Path() *path.Data {
	p := &path.Data{}
	switch op := tc.Op.(type) {
	case Line:
		p.MoveTo(center(tc.point(op.P1))).LineTo(center(tc.point(op.P2)))
	case Outline:
		triangle(p, tc.triangle(op.T))
	case Fill:
		triangle(p, tc.triangle(op.T))
	case Rect:
		x0, y0 := float64(op.Origin.X), float64(op.Origin.Y)
		x1, y1 := x0+float64(op.Size.X), y0+float64(op.Size.Y)
		p.MoveTo(vec.Vec2{X: x0, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y0}).
			LineTo(vec.Vec2{X: x1, Y: y1}).
			LineTo(vec.Vec2{X: x0, Y: y1}).
			Close()
	}
	return p
}

func (tc TestCase) point(p scanline.Point[int]) scanline.Point[int] {
	if tc.CTM == (matrix.Matrix{}) {
		return p
	}
	return p.Transform(tc.CTM)
}

func (tc TestCase) triangle(t scanline.Triangle[int]) scanline.Triangle[int] {
	if tc.CTM == (matrix.Matrix{}) {
		return t
	}
	return t.Transform(tc.CTM)
}

// triangle appends the closed outline of t to p.
func triangle(p *path.Data, t scanline.Triangle[int]) {
	p.MoveTo(center(t[0])).
		LineTo(center(t[1])).
		LineTo(center(t[2])).
		Close()
}

// center returns the centre of the pixel p.
func center(p scanline.Point[int]) vec.Vec2 {
	return p.Approx().Add(vec.Vec2{X: 0.5, Y: 0.5})
}

// pt is a helper to create a scanline.Point[int] from x, y coordinates.
func pt(x, y int) scanline.Point[int] {
	return scanline.Pt(x, y)
}

// tri is a helper to create a triangle from three vertex coordinates.
func tri(x0, y0, x1, y1, x2, y2 int) scanline.Triangle[int] {
	return scanline.Triangle[int]{pt(x0, y0), pt(x1, y1), pt(x2, y2)}
}
