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
	"cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Triangle is a triangle given by its three vertices.
// The vertices may be in any order, and may coincide.
type Triangle[N Coord] [3]Point[N]

// ByX orders points by their x coordinate.
func ByX[N Coord](a, b Point[N]) int {
	return cmp.Compare(a.X, b.X)
}

// ByY orders points by their y coordinate.
func ByY[N Coord](a, b Point[N]) int {
	return cmp.Compare(a.Y, b.Y)
}

// SortBy sorts the vertices of t in place, in increasing order as given by
// compare, and returns t.  The sort is stable, so that successive calls
// can be used to sort by several keys:
//
//	t.SortBy(ByX).SortBy(ByY) // by y, then by x
func (t *Triangle[N]) SortBy(compare func(a, b Point[N]) int) *Triangle[N] {
	c01 := compare(t[0], t[1])
	c12 := compare(t[1], t[2])
	c02 := compare(t[0], t[2])

	if c01 > 0 {
		if c12 > 0 {
			t[0], t[2] = t[2], t[0]
		} else {
			t[0], t[1] = t[1], t[0]
			if c02 > 0 {
				t[1], t[2] = t[2], t[1]
			}
		}
	} else if c12 > 0 {
		t[1], t[2] = t[2], t[1]
		if c02 > 0 {
			t[0], t[1] = t[1], t[0]
		}
	}
	return t
}

// BBox returns the smallest rectangle containing the three vertices.
func (t Triangle[N]) BBox() rect.Rect {
	xMin := min(t[0].X, t[1].X, t[2].X)
	xMax := max(t[0].X, t[1].X, t[2].X)
	yMin := min(t[0].Y, t[1].Y, t[2].Y)
	yMax := max(t[0].Y, t[1].Y, t[2].Y)
	return rect.Rect{
		LLx: Approx(xMin),
		LLy: Approx(yMin),
		URx: Approx(xMax),
		URy: Approx(yMax),
	}
}

// Transform applies the affine map m to all three vertices.
func (t Triangle[N]) Transform(m matrix.Matrix) Triangle[N] {
	return Triangle[N]{t[0].Transform(m), t[1].Transform(m), t[2].Transform(m)}
}

// Path returns the closed outline of t.
func (t Triangle[N]) Path() *path.Data {
	return (&path.Data{}).
		MoveTo(t[0].Approx()).
		LineTo(t[1].Approx()).
		LineTo(t[2].Approx()).
		Close()
}

// ConvertTriangle changes the coordinate type of t.
func ConvertTriangle[M, N Coord](t Triangle[N]) Triangle[M] {
	return Triangle[M]{ConvertPoint[M](t[0]), ConvertPoint[M](t[1]), ConvertPoint[M](t[2])}
}
