// Package drawutil draws Cartesian geometry into a cellbuf.Buffer with
// direction-aware glyphs: lines, arrows, axes with tick marks and the
// origin marker. Pixel positions come from raster.Trace; only the glyph
// choice lives here.
package drawutil

import (
	"github.com/wesen/cartline/pkg/cellbuf"
	"github.com/wesen/cartline/pkg/coordmap"
	"github.com/wesen/cartline/pkg/raster"
)

// pointChar returns the glyph for pts[i] based on its local direction
// (looking at the next or previous point).
func pointChar(pts []coordmap.WindowPoint, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// DrawLine rasterizes s and writes a per-point line glyph for each
// pixel. A single-pixel segment is drawn as a block.
func DrawLine(buf *cellbuf.Buffer, o coordmap.Origin, s raster.Segment, style cellbuf.StyleKey) {
	pts := raster.WindowPoints(o, s)
	if len(pts) == 1 {
		buf.Set(pts[0].X, pts[0].Y, cellbuf.Block, style)
		return
	}
	for i, p := range pts {
		buf.Set(p.X, p.Y, pointChar(pts, i), style)
	}
}

// DrawArrowLine draws s with an arrowhead on s.B. The head points along
// the final step, in window space.
func DrawArrowLine(buf *cellbuf.Buffer, o coordmap.Origin, s raster.Segment, lineStyle, arrowStyle cellbuf.StyleKey) {
	pts := raster.WindowPoints(o, s)
	head := o.Window(s.B)
	if len(pts) < 2 {
		buf.Set(head.X, head.Y, cellbuf.Block, arrowStyle)
		return
	}
	// Trace starts at the smaller-x end; orient the path toward B.
	if pts[0] == head {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	for i, p := range pts[:len(pts)-1] {
		buf.Set(p.X, p.Y, pointChar(pts, i), lineStyle)
	}
	prev := pts[len(pts)-2]
	buf.Set(head.X, head.Y, ArrowChar(head.X-prev.X, head.Y-prev.Y), arrowStyle)
}

// LineChar returns the glyph for a step with window-space direction
// (dx, dy).
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return cellbuf.Block
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// ArrowChar returns an arrowhead pointing in the dominant window-space
// direction of (dx, dy).
func ArrowChar(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
