package scanline

import (
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestNewFramebuffer(t *testing.T) {
	fb := NewFramebuffer(7, 3)
	if fb.Width() != 7 || fb.Height() != 3 {
		t.Errorf("got size %dx%d, want 7x3", fb.Width(), fb.Height())
	}
	if len(fb.Slice()) != 21 {
		t.Errorf("got %d pixels, want 21", len(fb.Slice()))
	}
	for i, c := range fb.Slice() {
		if c != 0 {
			t.Errorf("pixel %d = %08x, want 0", i, c)
		}
	}
	if got, want := fb.Bounds(), (rect.Rect{URx: 7, URy: 3}); got != want {
		t.Errorf("got bounds %v, want %v", got, want)
	}
}

func TestFillRect(t *testing.T) {
	const color = 0xFF0000FF

	fb := NewFramebuffer(10, 10)
	fb.FillRect(Pt(2, 2), Pt(3, 3), color)

	n := 0
	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x <= 4 && y >= 2 && y <= 4
			c := fb.At(x, y)
			switch {
			case inside && c != color:
				t.Errorf("(%d,%d) = %08x, want %08x", x, y, c, uint32(color))
			case !inside && c != 0:
				t.Errorf("(%d,%d) = %08x, want 0", x, y, c)
			}
			if c != 0 {
				n++
			}
		}
	}
	if n != 9 {
		t.Errorf("%d pixels set, want 9", n)
	}
}

func TestFillRectEdges(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.FillRect(Pt(0, 0), Pt(4, 3), 5) // whole buffer
	for i, c := range fb.Slice() {
		if c != 5 {
			t.Fatalf("pixel %d = %d, want 5", i, c)
		}
	}

	fb.Clear(0)
	fb.FillRect(Pt(1, 1), Pt(0, 2), 5) // empty
	fb.FillRect(Pt(4, 3), Pt(0, 0), 5) // empty, origin outside is fine
	for i, c := range fb.Slice() {
		if c != 0 {
			t.Fatalf("pixel %d = %d, want 0", i, c)
		}
	}
}

func TestDrawLine(t *testing.T) {
	fb := NewFramebuffer(5, 3)
	fb.DrawLine(Pt(0, 0), Pt(4, 2), 1)
	err := compareGrid(fb, `
##...
..##.
....#
`)
	if err != nil {
		t.Error(err)
	}

	fb.Clear(0)
	fb.DrawLine(Pt(2, 1), Pt(2, 1), 1)
	if err := compareGrid(fb, "\n.....\n..#..\n.....\n"); err != nil {
		t.Error(err)
	}
}

func TestDrawTriangle(t *testing.T) {
	fb := NewFramebuffer(6, 6)
	tri := Triangle[int]{{0, 0}, {4, 0}, {2, 4}}
	fb.DrawTriangle(tri, 1)
	err := compareGrid(fb, `
#####.
#...#.
.#.#..
.#.#..
..#...
......
`)
	if err != nil {
		t.Error(err)
	}

	// vertex order does not matter for the outline
	other := NewFramebuffer(6, 6)
	other.DrawTriangle(Triangle[int]{tri[2], tri[0], tri[1]}, 1)
	if grid(other) != grid(fb) {
		t.Errorf("outline depends on vertex order:\n%s", grid(other))
	}
}

func TestFillCoversOutline(t *testing.T) {
	// for flat triangles the filled area contains the outline
	for _, tri := range []Triangle[int]{
		{{0, 0}, {9, 0}, {4, 7}},
		{{4, 0}, {0, 7}, {9, 7}},
		{{0, 0}, {9, 0}, {9, 2}},
	} {
		outline := NewFramebuffer(10, 8)
		outline.DrawTriangle(tri, 1)
		fill := NewFramebuffer(10, 8)
		fill.FillTriangle(tri, 1)
		for i, c := range outline.Slice() {
			if c != 0 && fill.Slice()[i] == 0 {
				t.Errorf("%v: outline pixel (%d,%d) not filled",
					tri, i%10, i/10)
			}
		}
	}
}

func TestSetAt(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(2, 1, 0xDEADBEEF)
	if got := fb.At(2, 1); got != 0xDEADBEEF {
		t.Errorf("got %08x, want deadbeef", got)
	}
	if got := fb.Slice()[5]; got != 0xDEADBEEF {
		t.Errorf("row-major index 5 = %08x, want deadbeef", got)
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	cases := []struct {
		name string
		f    func(fb *Framebuffer)
	}{
		{"line", func(fb *Framebuffer) { fb.DrawLine(Pt(0, 0), Pt(10, 0), 1) }},
		{"negative", func(fb *Framebuffer) { fb.DrawLine(Pt(-1, 2), Pt(3, 2), 1) }},
		{"outline", func(fb *Framebuffer) { fb.DrawTriangle(Triangle[int]{{0, 0}, {9, 0}, {0, 10}}, 1) }},
		{"fill", func(fb *Framebuffer) { fb.FillTriangle(Triangle[int]{{0, 0}, {9, 0}, {0, 10}}, 1) }},
		{"rect", func(fb *Framebuffer) { fb.FillRect(Pt(8, 8), Pt(3, 1), 1) }},
		{"rect size", func(fb *Framebuffer) { fb.FillRect(Pt(1, 1), Pt(-1, 1), 1) }},
		{"set", func(fb *Framebuffer) { fb.Set(0, 10, 1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("no panic")
				}
				msg, _ := r.(string)
				if !strings.HasPrefix(msg, "scanline: ") {
					t.Errorf("unexpected panic value %v", r)
				}
				for i, c := range fb.Slice() {
					if c != 0 {
						t.Fatalf("pixel %d written before panic", i)
					}
				}
			}()
			c.f(fb)
		})
	}
}
