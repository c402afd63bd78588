package raster

import (
	"github.com/wesen/cartline/pkg/cellbuf"
	"github.com/wesen/cartline/pkg/coordmap"
)

// Canvas receives pixels in window coordinates. *cellbuf.Buffer
// implements it.
type Canvas interface {
	SetPixel(x, y int, c cellbuf.Cell)
}

// CanvasFunc adapts a plain function to Canvas.
type CanvasFunc func(x, y int, c cellbuf.Cell)

// SetPixel calls f(x, y, c).
func (f CanvasFunc) SetPixel(x, y int, c cellbuf.Cell) { f(x, y, c) }

// Rasterizer plots Cartesian geometry onto a Canvas. It holds no state
// between calls; Origin is read on every plot.
type Rasterizer struct {
	Origin coordmap.Origin
	Canvas Canvas
	Ink    cellbuf.Cell
}

// New returns a Rasterizer that plots solid blocks in style 0.
func New(origin coordmap.Origin, canvas Canvas) Rasterizer {
	return Rasterizer{
		Origin: origin,
		Canvas: canvas,
		Ink:    cellbuf.Ink(cellbuf.Block, 0),
	}
}

// WithInk returns a copy of r that plots c.
func (r Rasterizer) WithInk(c cellbuf.Cell) Rasterizer {
	r.Ink = c
	return r
}

// DrawLine plots the segment (x1,y1)-(x2,y2), given in Cartesian
// coordinates.
func (r Rasterizer) DrawLine(x1, y1, x2, y2 int) {
	r.DrawSegment(Seg(x1, y1, x2, y2))
}

// DrawSegment plots every pixel of s.
func (r Rasterizer) DrawSegment(s Segment) {
	Trace(s, r.plot)
}

// DrawOriginMarker plots Cartesian (0,0).
func (r Rasterizer) DrawOriginMarker() {
	r.plot(coordmap.Pt(0, 0))
}

// DrawAxes plots the x and y axes across a w×h window grid. Each axis
// runs between the Cartesian images of the grid edges.
func (r Rasterizer) DrawAxes(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	o := r.Origin
	r.DrawLine(0, o.ToCartesian(0, coordmap.AxisY), 0, o.ToCartesian(h-1, coordmap.AxisY))
	r.DrawLine(o.ToCartesian(0, coordmap.AxisX), 0, o.ToCartesian(w-1, coordmap.AxisX), 0)
}

func (r Rasterizer) plot(p coordmap.CartesianPoint) {
	w := r.Origin.Window(p)
	r.Canvas.SetPixel(w.X, w.Y, r.Ink)
}
