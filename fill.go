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
	"math"
	"slices"
)

// ScanTriangle computes the horizontal spans covering the filled triangle t
// and calls emit once for every span.  Each span covers the pixels x0..x1
// (inclusive) on scanline y.  No span extends beyond the bounding box of
// the vertices.
//
// Triangles which are not flat at the top or bottom are split into two flat
// triangles along the scanline of the middle vertex.  That scanline is
// reported once for each part.  Triangles of zero height produce no spans.
func ScanTriangle[N Coord](t Triangle[N], emit func(y, x0, x1 N)) {
	// by y, then by x
	t.SortBy(ByX[N]).SortBy(ByY[N])

	switch {
	case t[0].Y == t[2].Y:
		Logger().Debug("skipping zero-height triangle",
			"y", Approx(t[0].Y),
			"x0", Approx(t[0].X),
			"x1", Approx(t[2].X))
	case t[0].Y == t[1].Y:
		scanTopFlat(t, emit)
	case t[1].Y == t[2].Y:
		scanBottomFlat(t, emit)
	default:
		t4, ok := splitPoint(t[0], t[1], t[2])
		if !ok {
			return
		}
		// t4 can be to the left or to the right of t[1]
		var bottom, top Triangle[N]
		if t4.X < t[1].X {
			bottom = Triangle[N]{t[0], t4, t[1]}
			top = Triangle[N]{t4, t[1], t[2]}
		} else {
			bottom = Triangle[N]{t[0], t[1], t4}
			top = Triangle[N]{t[1], t4, t[2]}
		}
		scanBottomFlat(bottom, emit)
		scanTopFlat(top, emit)
	}
}

// splitPoint returns the point on the edge t0-t2 which lies on the same
// scanline as t1.  The x coordinate is truncated towards t0.
func splitPoint[N Coord](t0, t1, t2 Point[N]) (Point[N], bool) {
	den := Approx(t2.Y) - Approx(t0.Y)
	if den == 0 {
		return Point[N]{}, false
	}
	frac := (Approx(t1.Y) - Approx(t0.Y)) / den
	dx := math.Trunc(frac * (Approx(t2.X) - Approx(t0.X)))
	return Point[N]{X: t0.X + ApproxFrom[N](dx), Y: t1.Y}, true
}

// scanBottomFlat fills a triangle with apex t[0] above the horizontal edge
// t[1]-t[2].  The caller must ensure t[1].X <= t[2].X.
func scanBottomFlat[N Coord](t Triangle[N], emit func(y, x0, x1 N)) {
	scanFlat(t[1], t[2], t[0], emit)
}

// scanTopFlat fills a triangle with the horizontal edge t[0]-t[1] above the
// apex t[2].  The caller must ensure t[0].X <= t[1].X.
func scanTopFlat[N Coord](t Triangle[N], emit func(y, x0, x1 N)) {
	scanFlat(t[0], t[1], t[2], emit)
}

// scanFlat fills the triangle formed by the horizontal edge left-right and
// the apex.  The two sloped edges are walked in lock-step, one scanline at
// a time.
func scanFlat[N Coord](left, right, apex Point[N], emit func(y, x0, x1 N)) {
	l := edgeRows(left, apex)
	r := edgeRows(right, apex)

	i, j := 0, 0
	for i < len(l) && j < len(r) {
		switch {
		case l[i].y < r[j].y:
			i++
		case l[i].y > r[j].y:
			j++
		default:
			emit(l[i].y, min(l[i].x0, r[j].x0), max(l[i].x1, r[j].x1))
			i++
			j++
		}
	}
}

// row is the run of pixels a line has on a single scanline.
type row[N Coord] struct {
	y, x0, x1 N
}

// edgeRows returns the runs of the line from p to q, in order of
// increasing y.  Lines with |dx| > |dy| have several pixels on some
// scanlines; these are merged into a single row.
func edgeRows[N Coord](p, q Point[N]) []row[N] {
	var rows []row[N]
	for pt := range Line(p, q) {
		if n := len(rows); n > 0 && rows[n-1].y == pt.Y {
			r := &rows[n-1]
			r.x0 = min(r.x0, pt.X)
			r.x1 = max(r.x1, pt.X)
			continue
		}
		rows = append(rows, row[N]{y: pt.Y, x0: pt.X, x1: pt.X})
	}

	// Lines are stepped along the major axis, so a shallow line can run
	// from bottom to top.
	if n := len(rows); n > 1 && rows[0].y > rows[n-1].y {
		slices.Reverse(rows)
	}
	return rows
}
