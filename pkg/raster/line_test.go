package raster

import (
	"testing"

	"github.com/wesen/cartline/pkg/cellbuf"
	"github.com/wesen/cartline/pkg/coordmap"
)

// recorder is a Canvas that remembers every plotted pixel in order.
type recorder struct {
	pts []coordmap.WindowPoint
	ink []cellbuf.Cell
}

func (r *recorder) SetPixel(x, y int, c cellbuf.Cell) {
	r.pts = append(r.pts, coordmap.WindowPoint{X: x, Y: y})
	r.ink = append(r.ink, c)
}

func (r *recorder) set() map[coordmap.WindowPoint]bool {
	m := make(map[coordmap.WindowPoint]bool, len(r.pts))
	for _, p := range r.pts {
		m[p] = true
	}
	return m
}

func drawn(o coordmap.Origin, x1, y1, x2, y2 int) *recorder {
	rec := &recorder{}
	New(o, rec).DrawLine(x1, y1, x2, y2)
	return rec
}

func adjacent(a, b coordmap.WindowPoint) bool {
	return abs(a.X-b.X) <= 1 && abs(a.Y-b.Y) <= 1 && a != b
}

func wp(x, y int) coordmap.WindowPoint { return coordmap.WindowPoint{X: x, Y: y} }

// ── Fixed cases ──

func TestDrawLineHorizontal(t *testing.T) {
	rec := drawn(coordmap.Origin{}, 0, 0, 5, 0)
	want := []coordmap.WindowPoint{wp(0, 0), wp(1, 0), wp(2, 0), wp(3, 0), wp(4, 0), wp(5, 0)}
	if len(rec.pts) != len(want) {
		t.Fatalf("expected %d pixels, got %d: %v", len(want), len(rec.pts), rec.pts)
	}
	for i, p := range want {
		if rec.pts[i] != p {
			t.Errorf("pixel %d: expected %v, got %v", i, p, rec.pts[i])
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	rec := drawn(coordmap.Origin{}, 0, 0, 3, 3)
	if len(rec.pts) != 4 {
		t.Fatalf("expected 4 pixels, got %d: %v", len(rec.pts), rec.pts)
	}
	for i := 1; i < len(rec.pts); i++ {
		dx := rec.pts[i].X - rec.pts[i-1].X
		dy := rec.pts[i].Y - rec.pts[i-1].Y
		if abs(dx) != 1 || abs(dy) != 1 {
			t.Errorf("step %d: expected unit diagonal step, got (%d,%d)", i, dx, dy)
		}
	}
}

func TestDrawLineSteep(t *testing.T) {
	rec := drawn(coordmap.Origin{}, 0, 0, 1, 10)
	if len(rec.pts) != 11 {
		t.Fatalf("steep line: expected 11 pixels, got %d: %v", len(rec.pts), rec.pts)
	}
	seen := map[int]bool{}
	for i, p := range rec.pts {
		seen[-p.Y] = true // origin (0,0): window y = -cartesian y
		if i > 0 && !adjacent(rec.pts[i-1], p) {
			t.Errorf("gap between %v and %v", rec.pts[i-1], p)
		}
	}
	for y := 0; y <= 10; y++ {
		if !seen[y] {
			t.Errorf("steep line: cartesian row y=%d not covered", y)
		}
	}
}

func TestDrawLineVertical(t *testing.T) {
	for _, tc := range []struct{ y1, y2 int }{{-4, 6}, {6, -4}} {
		pts := Points(Seg(2, tc.y1, 2, tc.y2))
		if len(pts) != 11 {
			t.Fatalf("vertical %d..%d: expected 11 points, got %d", tc.y1, tc.y2, len(pts))
		}
		for i, p := range pts {
			if p.X != 2 || p.Y != -4+i {
				t.Errorf("vertical point %d: expected (2,%d), got %v", i, -4+i, p)
			}
		}
	}
}

func TestTraceSinglePoint(t *testing.T) {
	pts := Points(Seg(3, -3, 3, -3))
	if len(pts) != 1 || pts[0] != coordmap.Pt(3, -3) {
		t.Fatalf("zero-length segment: expected [(3,-3)], got %v", pts)
	}
}

func TestTraceNegativeSlope(t *testing.T) {
	pts := Points(Seg(0, 0, 6, -2))
	want := []coordmap.CartesianPoint{
		coordmap.Pt(0, 0), coordmap.Pt(1, 0), coordmap.Pt(2, -1), coordmap.Pt(3, -1),
		coordmap.Pt(4, -1), coordmap.Pt(5, -2), coordmap.Pt(6, -2),
	}
	if len(pts) != len(want) {
		t.Fatalf("expected %v, got %v", want, pts)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], pts[i])
		}
	}
}

func TestDominant(t *testing.T) {
	tests := []struct {
		s    Segment
		want coordmap.Axis
	}{
		{Seg(0, 0, 5, 1), coordmap.AxisX},
		{Seg(0, 0, 1, 5), coordmap.AxisY},
		{Seg(0, 0, 3, -3), coordmap.AxisY},
		{Seg(4, 0, -4, 0), coordmap.AxisX},
		{Seg(0, 4, 0, -4), coordmap.AxisY},
	}
	for _, tc := range tests {
		if got := tc.s.Dominant(); got != tc.want {
			t.Errorf("%v.Dominant() = %v, want %v", tc.s, got, tc.want)
		}
	}
}

// ── Properties over every segment in a small box ──

func eachSegment(f func(s Segment)) {
	const r = 6
	for x1 := -r; x1 <= r; x1++ {
		for y1 := -r; y1 <= r; y1++ {
			for x2 := -r; x2 <= r; x2++ {
				for y2 := -r; y2 <= r; y2++ {
					f(Seg(x1, y1, x2, y2))
				}
			}
		}
	}
}

func TestTraceProperties(t *testing.T) {
	eachSegment(func(s Segment) {
		pts := Points(s)

		if len(pts) != s.Len() {
			t.Fatalf("%v: expected %d points, got %d", s, s.Len(), len(pts))
		}

		has := func(q coordmap.CartesianPoint) bool {
			for _, p := range pts {
				if p == q {
					return true
				}
			}
			return false
		}
		if !has(s.A) || !has(s.B) {
			t.Fatalf("%v: endpoints missing from %v", s, pts)
		}

		for i := 1; i < len(pts); i++ {
			dx, dy := abs(pts[i].X-pts[i-1].X), abs(pts[i].Y-pts[i-1].Y)
			if dx > 1 || dy > 1 || dx+dy == 0 {
				t.Fatalf("%v: step %v -> %v is not 8-adjacent", s, pts[i-1], pts[i])
			}
		}

		// Every pixel is within half a pixel of the ideal line along
		// the minor axis: 2*|cross| <= major span.
		ex, ey := s.B.X-s.A.X, s.B.Y-s.A.Y
		major := max(abs(ex), abs(ey))
		for _, p := range pts {
			cross := (p.X-s.A.X)*ey - (p.Y-s.A.Y)*ex
			if 2*abs(cross) > major {
				t.Fatalf("%v: pixel %v strays from the ideal line (cross=%d)", s, p, cross)
			}
		}
	})
}

func TestTraceSymmetric(t *testing.T) {
	eachSegment(func(s Segment) {
		fwd := Points(s)
		rev := Points(Segment{A: s.B, B: s.A})
		if len(fwd) != len(rev) {
			t.Fatalf("%v: forward %d points, reverse %d", s, len(fwd), len(rev))
		}
		for i := range fwd {
			if fwd[i] != rev[i] {
				t.Fatalf("%v: forward %v != reverse %v", s, fwd, rev)
			}
		}
	})
}

// ── Rasterizer ──

func TestDrawLineEndpointsInWindowSpace(t *testing.T) {
	o := coordmap.Origin{CenterX: 100, CenterY: 100}
	rec := drawn(o, -7, 3, 12, -20)
	got := rec.set()
	for _, p := range []coordmap.CartesianPoint{coordmap.Pt(-7, 3), coordmap.Pt(12, -20)} {
		w := o.Window(p)
		if !got[w] {
			t.Errorf("endpoint %v (window %v) not plotted", p, w)
		}
	}
}

func TestDrawLineUsesInk(t *testing.T) {
	rec := &recorder{}
	ink := cellbuf.Ink('*', 7)
	New(coordmap.Origin{}, rec).WithInk(ink).DrawLine(0, 0, 2, 1)
	for i, c := range rec.ink {
		if c != ink {
			t.Errorf("pixel %d: ink %v, want %v", i, c, ink)
		}
	}
}

func TestDrawOriginMarker(t *testing.T) {
	rec := &recorder{}
	New(coordmap.Origin{CenterX: 40, CenterY: 12}, rec).DrawOriginMarker()
	if len(rec.pts) != 1 || rec.pts[0] != wp(40, 12) {
		t.Fatalf("origin marker: expected [(40,12)], got %v", rec.pts)
	}
}

func TestDrawAxes(t *testing.T) {
	buf := cellbuf.New(20, 10, 0)
	New(coordmap.CenterOf(20, 10), buf).WithInk(cellbuf.Ink('+', 1)).DrawAxes(buf.W, buf.H)

	for x := 0; x < 20; x++ {
		if c, _ := buf.At(x, 5); c.Style != 1 {
			t.Errorf("x axis: cell (%d,5) not plotted", x)
		}
	}
	for y := 0; y < 10; y++ {
		if c, _ := buf.At(10, y); c.Style != 1 {
			t.Errorf("y axis: cell (10,%d) not plotted", y)
		}
	}
	if n := buf.Count(1); n != 20+10-1 {
		t.Errorf("axes: expected %d cells, got %d", 29, n)
	}
}

func TestDrawAxesEmptyGrid(t *testing.T) {
	rec := &recorder{}
	New(coordmap.Origin{}, rec).DrawAxes(0, 5)
	if len(rec.pts) != 0 {
		t.Errorf("expected no pixels for empty grid, got %v", rec.pts)
	}
}

func TestCanvasFunc(t *testing.T) {
	n := 0
	New(coordmap.Origin{}, CanvasFunc(func(x, y int, c cellbuf.Cell) { n++ })).DrawLine(0, 0, 4, 9)
	if n != 10 {
		t.Errorf("expected 10 pixels through CanvasFunc, got %d", n)
	}
}

func BenchmarkTrace(b *testing.B) {
	s := Seg(-300, -120, 417, 260)
	for i := 0; i < b.N; i++ {
		Trace(s, func(coordmap.CartesianPoint) {})
	}
}
