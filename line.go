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
	"iter"
	"math"
)

type axis uint8

const (
	axisX axis = iota
	axisY
)

// LineIter enumerates the pixels of a line segment, using Bresenham's
// algorithm.  The points are produced in order of increasing coordinate
// along the major axis, which is the axis with the larger extent.
// Consecutive points differ by exactly one along the major axis and by at
// most one along the minor axis.
//
// A LineIter is not restartable.
type LineIter[N Coord] struct {
	major axis

	index    N // position along the major axis
	indexMax N // last position along the major axis
	value    N // position along the minor axis
	step     N // +1 or -1, minor axis direction

	deltaError float64 // minor axis advance per major axis step, in [0, 1]
	errorSum   float64
	done       bool
}

// NewLineIter returns an iterator over the pixels of the line from p1 to p2.
// Both endpoints are included.  If p1 == p2, the iterator produces the
// single point p1.
func NewLineIter[N Coord](p1, p2 Point[N]) *LineIter[N] {
	deltaX := Approx(p2.X) - Approx(p1.X)
	deltaY := Approx(p2.Y) - Approx(p1.Y)

	it := &LineIter[N]{step: 1}
	var major, minor float64
	if math.Abs(deltaX) > math.Abs(deltaY) {
		it.major = axisX
		major, minor = deltaX, deltaY
	} else {
		it.major = axisY
		major, minor = deltaY, deltaX
	}

	// iterate from the lower to the higher major axis coordinate
	if major < 0 {
		p1, p2 = p2, p1
		major, minor = -major, -minor
	}

	// major == 0 implies minor == 0: the endpoints coincide
	if major != 0 {
		it.deltaError = math.Abs(minor / major)
	}
	if minor < 0 {
		it.step = -1
	}

	switch it.major {
	case axisX:
		it.index, it.indexMax, it.value = p1.X, p2.X, p1.Y
	case axisY:
		it.index, it.indexMax, it.value = p1.Y, p2.Y, p1.X
	}
	return it
}

// Next returns the next point of the line.
// The second return value is false once the line is exhausted.
func (it *LineIter[N]) Next() (Point[N], bool) {
	if it.done || it.index > it.indexMax {
		return Point[N]{}, false
	}

	var current Point[N]
	switch it.major {
	case axisX:
		current = Point[N]{X: it.index, Y: it.value}
	case axisY:
		current = Point[N]{X: it.value, Y: it.index}
	}

	// Stop before incrementing, so that a line ending at the largest
	// value of an integer type does not wrap around.
	if it.index >= it.indexMax {
		it.done = true
		return current, true
	}
	it.index++
	if it.index <= it.indexMax {
		it.errorSum += it.deltaError
		if it.errorSum > 0.5 {
			it.value += it.step
			it.errorSum -= 1
		}
	}
	return current, true
}

// Line returns the pixels of the line from p1 to p2, as produced by
// [LineIter].
func Line[N Coord](p1, p2 Point[N]) iter.Seq[Point[N]] {
	return func(yield func(Point[N]) bool) {
		it := NewLineIter(p1, p2)
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
