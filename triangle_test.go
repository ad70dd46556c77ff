package scanline

import (
	"cmp"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// allTriangles returns all triangles with vertex coordinates in 0..n-1.
func allTriangles(n int) []Triangle[int] {
	var pts []Point[int]
	for y := range n {
		for x := range n {
			pts = append(pts, Pt(x, y))
		}
	}
	var res []Triangle[int]
	for _, a := range pts {
		for _, b := range pts {
			for _, c := range pts {
				res = append(res, Triangle[int]{a, b, c})
			}
		}
	}
	return res
}

func TestSortByMatchesStableSort(t *testing.T) {
	for _, compare := range []func(a, b Point[int]) int{ByX[int], ByY[int]} {
		for _, tri := range allTriangles(3) {
			want := tri
			slices.SortStableFunc(want[:], compare)

			got := tri
			got.SortBy(compare)
			if got != want {
				t.Fatalf("sorting %v: got %v, want %v", tri, got, want)
			}
		}
	}
}

func TestSortByYThenX(t *testing.T) {
	byYX := func(a, b Point[int]) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	}
	for _, tri := range allTriangles(3) {
		got := tri
		got.SortBy(ByX[int]).SortBy(ByY[int])

		if !slices.IsSortedFunc(got[:], byYX) {
			t.Fatalf("sorting %v: got %v, not ordered by y then x", tri, got)
		}

		// a permutation of the input
		a, b := tri, got
		slices.SortFunc(a[:], byYX)
		slices.SortFunc(b[:], byYX)
		if a != b {
			t.Fatalf("sorting %v: got %v, vertices changed", tri, got)
		}

		// idempotent
		again := got
		again.SortBy(ByX[int]).SortBy(ByY[int])
		if again != got {
			t.Fatalf("sorting %v twice: got %v, want %v", tri, again, got)
		}
	}
}

func TestSortByReturnsReceiver(t *testing.T) {
	tri := Triangle[int]{{2, 0}, {1, 0}, {0, 0}}
	if p := tri.SortBy(ByX[int]); p != &tri {
		t.Error("SortBy did not return its receiver")
	}
	want := Triangle[int]{{0, 0}, {1, 0}, {2, 0}}
	if tri != want {
		t.Errorf("got %v, want %v", tri, want)
	}
}

func TestTriangleBBox(t *testing.T) {
	tri := Triangle[int]{{5, 1}, {-2, 7}, {3, 4}}
	want := rect.Rect{LLx: -2, LLy: 1, URx: 5, URy: 7}
	if got := tri.BBox(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTriangleTransform(t *testing.T) {
	tri := Triangle[int]{{0, 0}, {4, 0}, {2, 4}}

	got := tri.Transform(matrix.Matrix{2, 0, 0, 2, 1, 3})
	want := Triangle[int]{{1, 3}, {9, 3}, {5, 11}}
	if got != want {
		t.Errorf("scale: got %v, want %v", got, want)
	}

	// sin(180°) is not exactly zero in floating point
	got = tri.Transform(matrix.RotateDeg(180))
	want = Triangle[int]{{0, 0}, {-4, 0}, {-2, -4}}
	if got != want {
		t.Errorf("rotate: got %v, want %v", got, want)
	}
}

func TestTrianglePath(t *testing.T) {
	tri := Triangle[int]{{0, 0}, {4, 0}, {2, 4}}
	p := tri.Path()

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}
	if !slices.Equal(p.Cmds, wantCmds) {
		t.Errorf("got commands %v, want %v", p.Cmds, wantCmds)
	}
	wantCoords := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}}
	if !slices.Equal(p.Coords, wantCoords) {
		t.Errorf("got coordinates %v, want %v", p.Coords, wantCoords)
	}
}

func TestConvertTriangle(t *testing.T) {
	tri := Triangle[float64]{{0.9, 1.5}, {4.2, -0.7}, {2, 4}}
	got := ConvertTriangle[int](tri)
	want := Triangle[int]{{0, 1}, {4, 0}, {2, 4}}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
