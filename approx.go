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
	"math"
)

// Coord is the set of coordinate types the rasterizer can step over.
// Unsigned types are excluded, since lines may step in negative direction.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Approx converts a coordinate to the float64 working type used for
// slope and error computations.
func Approx[N Coord](v N) float64 {
	return float64(v)
}

// ApproxFrom converts a float64 working value back to the coordinate type.
//
// For integer types the fractional part is discarded (truncation toward
// zero).  If the truncated value cannot be represented by N, or if f is NaN
// or infinite, ApproxFrom panics.  Floating point types never panic; float32
// results are rounded to the nearest representable value.
func ApproxFrom[N Coord](f float64) N {
	n := N(f)
	if isInteger[N]() && float64(n) != math.Trunc(f) {
		panic(fmt.Sprintf("scanline: %g is not representable as %T", f, n))
	}
	return n
}

// isInteger reports whether N is one of the integer types in Coord.
func isInteger[N Coord]() bool {
	half := 0.5
	return N(half) == 0
}

// roundTo converts f to N, rounding to the nearest integer first if N is an
// integer type.
func roundTo[N Coord](f float64) N {
	if isInteger[N]() {
		f = math.Round(f)
	}
	return ApproxFrom[N](f)
}
