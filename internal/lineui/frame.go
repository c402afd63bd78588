package lineui

import (
	"image"

	"charm.land/lipgloss/v2"
	"github.com/wesen/cartline/pkg/cellbuf"
	"github.com/wesen/cartline/pkg/drawutil"
	"github.com/wesen/cartline/pkg/raster"
)

// cursorSegment is the line currently drawn toward the mouse.
func (m Model) cursorSegment() raster.Segment {
	return raster.Segment{A: m.Anchor, B: m.CursorCartesian()}
}

// frame draws one w×h frame of the drawing area: axes and ticks, the
// anchor-to-cursor line, then the origin marker on top.
func (m Model) frame(w, h int) *cellbuf.Buffer {
	buf := cellbuf.New(w, h, styleBG)

	drawutil.DrawAxes(buf, m.Origin, styleAxis)
	drawutil.DrawTicks(buf, m.Origin, m.TickSpacing, m.TickSpacing, styleTick)

	if m.HasCursor {
		seg := m.cursorSegment()
		if m.Glyphs {
			drawutil.DrawArrowLine(buf, m.Origin, seg, styleLine, styleAnchor)
			if seg.A != seg.B {
				a := m.Origin.Window(seg.A)
				buf.Set(a.X, a.Y, '◆', styleAnchor)
			}
		} else {
			raster.New(m.Origin, buf).
				WithInk(cellbuf.Ink(cellbuf.Block, styleLine)).
				DrawSegment(seg)
		}
	}

	drawutil.DrawOriginMarker(buf, m.Origin, styleOrigin)
	return buf
}

// buildCanvasLayer renders the frame as a single Layer at the canvas position.
func (m Model) buildCanvasLayer(viewport image.Rectangle) *lipgloss.Layer {
	w := viewport.Dx()
	h := viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(0)
	}
	rendered := m.frame(w, h).Render(bufStyles)
	return lipgloss.NewLayer(rendered).X(viewport.Min.X).Y(viewport.Min.Y).Z(0).ID("canvas")
}
