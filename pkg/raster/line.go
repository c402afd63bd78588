// Package raster draws line segments onto a pixel grid with an integer
// decision-variable algorithm. Segments are given in Cartesian
// coordinates; every pixel is emitted in window coordinates through a
// coordmap.Origin.
package raster

import "github.com/wesen/cartline/pkg/coordmap"

// Segment is a line between two Cartesian endpoints.
type Segment struct {
	A, B coordmap.CartesianPoint
}

// Seg is shorthand for Segment{Pt(x1, y1), Pt(x2, y2)}.
func Seg(x1, y1, x2, y2 int) Segment {
	return Segment{A: coordmap.Pt(x1, y1), B: coordmap.Pt(x2, y2)}
}

// Delta returns the absolute spans |x1-x2| and |y1-y2|.
func (s Segment) Delta() (dx, dy int) {
	return abs(s.A.X - s.B.X), abs(s.A.Y - s.B.Y)
}

// Dominant returns the axis stepped once per pixel. Ties step along y.
func (s Segment) Dominant() coordmap.Axis {
	dx, dy := s.Delta()
	if dy < dx {
		return coordmap.AxisX
	}
	return coordmap.AxisY
}

// Len returns the number of pixels Trace emits for s.
func (s Segment) Len() int {
	dx, dy := s.Delta()
	return max(dx, dy) + 1
}

// Trace walks the pixels of s in order, starting from the endpoint with
// the smaller x (smaller y for vertical segments), and calls visit for
// each. Both endpoints are always visited, consecutive pixels are
// 8-adjacent, and swapping A and B yields the same sequence.
//
// The loop ends on the dominant axis: x for shallow segments, y for
// steep ones.
func Trace(s Segment, visit func(coordmap.CartesianPoint)) {
	a, b := s.A, s.B
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	dx := b.X - a.X
	dy := abs(b.Y - a.Y)
	sy := 1
	if b.Y < a.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	visit(coordmap.Pt(x, y))

	switch {
	case dx == 0 && dy == 0:
		return

	case dx == 0:
		for y != b.Y {
			y += sy
			visit(coordmap.Pt(x, y))
		}

	case dy == 0:
		for x != b.X {
			x++
			visit(coordmap.Pt(x, y))
		}

	case dy < dx:
		// x-dominant: p tracks whether the ideal line has crossed into
		// the next row.
		p := 2*dy - dx
		for x != b.X {
			x++
			if p < 0 {
				p += 2 * dy
			} else {
				p += 2 * (dy - dx)
				y += sy
			}
			visit(coordmap.Pt(x, y))
		}

	default:
		p := 2*dx - dy
		for y != b.Y {
			y += sy
			if p < 0 {
				p += 2 * dx
			} else {
				p += 2 * (dx - dy)
				x++
			}
			visit(coordmap.Pt(x, y))
		}
	}
}

// Points returns the pixels of s in Trace order.
func Points(s Segment) []coordmap.CartesianPoint {
	pts := make([]coordmap.CartesianPoint, 0, s.Len())
	Trace(s, func(p coordmap.CartesianPoint) {
		pts = append(pts, p)
	})
	return pts
}

// WindowPoints returns the pixels of s converted to window space.
func WindowPoints(o coordmap.Origin, s Segment) []coordmap.WindowPoint {
	pts := make([]coordmap.WindowPoint, 0, s.Len())
	Trace(s, func(p coordmap.CartesianPoint) {
		pts = append(pts, o.Window(p))
	})
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
