package drawutil

import (
	"github.com/wesen/cartline/pkg/cellbuf"
	"github.com/wesen/cartline/pkg/coordmap"
	"github.com/wesen/cartline/pkg/raster"
)

// Axis and tick glyphs.
const (
	CrossChar  = '╋'
	TickChar   = '┼'
	OriginChar = cellbuf.Block
)

// DrawAxes draws the Cartesian x and y axes across the whole buffer.
// The crossing cell is left to DrawOriginMarker or set to CrossChar.
func DrawAxes(buf *cellbuf.Buffer, o coordmap.Origin, style cellbuf.StyleKey) {
	if buf.W == 0 || buf.H == 0 {
		return
	}
	top := o.ToCartesian(0, coordmap.AxisY)
	bottom := o.ToCartesian(buf.H-1, coordmap.AxisY)
	left := o.ToCartesian(0, coordmap.AxisX)
	right := o.ToCartesian(buf.W-1, coordmap.AxisX)

	DrawLine(buf, o, raster.Seg(0, top, 0, bottom), style)
	DrawLine(buf, o, raster.Seg(left, 0, right, 0), style)
	buf.Set(o.CenterX, o.CenterY, CrossChar, style)
}

// DrawTicks marks the axes every spacingX Cartesian units along x and
// every spacingY units along y. A spacing <= 0 disables that axis.
func DrawTicks(buf *cellbuf.Buffer, o coordmap.Origin, spacingX, spacingY int, style cellbuf.StyleKey) {
	if spacingX > 0 {
		for c := 0; c < buf.W; c++ {
			cx := o.ToCartesian(c, coordmap.AxisX)
			if cx != 0 && mod(cx, spacingX) == 0 {
				buf.Set(c, o.CenterY, TickChar, style)
			}
		}
	}
	if spacingY > 0 {
		for r := 0; r < buf.H; r++ {
			cy := o.ToCartesian(r, coordmap.AxisY)
			if cy != 0 && mod(cy, spacingY) == 0 {
				buf.Set(o.CenterX, r, TickChar, style)
			}
		}
	}
}

// DrawOriginMarker paints Cartesian (0,0) with a solid block.
func DrawOriginMarker(buf *cellbuf.Buffer, o coordmap.Origin, style cellbuf.StyleKey) {
	raster.New(o, buf).WithInk(cellbuf.Ink(OriginChar, style)).DrawOriginMarker()
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
