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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Point is a position or displacement in a 2D coordinate system.
type Point[N Coord] struct {
	X, Y N
}

// Pt is shorthand for Point[N]{X: x, Y: y}.
func Pt[N Coord](x, y N) Point[N] {
	return Point[N]{X: x, Y: y}
}

// Add returns the componentwise sum p+q.
func (p Point[N]) Add(q Point[N]) Point[N] {
	return Point[N]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p-q.
func (p Point[N]) Sub(q Point[N]) Point[N] {
	return Point[N]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Approx returns p in the float64 working type.
func (p Point[N]) Approx() vec.Vec2 {
	return vec.Vec2{X: Approx(p.X), Y: Approx(p.Y)}
}

// Transform applies the affine map m to p.
// For integer coordinate types the result is rounded to the nearest
// integer.
func (p Point[N]) Transform(m matrix.Matrix) Point[N] {
	x, y := Approx(p.X), Approx(p.Y)
	return Point[N]{
		X: roundTo[N](m[0]*x + m[2]*y + m[4]),
		Y: roundTo[N](m[1]*x + m[3]*y + m[5]),
	}
}

func (p Point[N]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// PointFromVec converts a working-type vector to a Point, using the
// conversion rules of [ApproxFrom].
func PointFromVec[N Coord](v vec.Vec2) Point[N] {
	return Point[N]{X: ApproxFrom[N](v.X), Y: ApproxFrom[N](v.Y)}
}

// ConvertPoint changes the coordinate type of p.
func ConvertPoint[M, N Coord](p Point[N]) Point[M] {
	return PointFromVec[M](p.Approx())
}
