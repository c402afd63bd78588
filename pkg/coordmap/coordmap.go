// Package coordmap converts integer coordinates between window space
// (origin top-left, Y grows downward) and Cartesian space (origin at a
// configurable center, Y grows upward).
//
// The Origin is passed explicitly to every conversion; there is no
// package-level state.
package coordmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis selects which coordinate a scalar conversion applies to.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// WindowPoint is a position on the pixel grid, origin top-left.
type WindowPoint struct {
	X, Y int
}

func (p WindowPoint) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// CartesianPoint is a position relative to an Origin, Y up.
type CartesianPoint struct {
	X, Y int
}

// Pt is shorthand for CartesianPoint{x, y}.
func Pt(x, y int) CartesianPoint { return CartesianPoint{X: x, Y: y} }

func (p CartesianPoint) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Origin is the window-space position of Cartesian (0,0).
type Origin struct {
	CenterX, CenterY int
}

// DefaultOrigin is used when no grid size is known yet.
var DefaultOrigin = Origin{CenterX: 100, CenterY: 100}

// CenterOf returns the origin at the middle of a w×h grid.
func CenterOf(w, h int) Origin {
	return Origin{CenterX: w / 2, CenterY: h / 2}
}

// ToCartesian converts a window coordinate on axis a.
func (o Origin) ToCartesian(v int, a Axis) int {
	if a == AxisX {
		return v - o.CenterX
	}
	return o.CenterY - v
}

// ToWindow converts a Cartesian coordinate on axis a. It is the exact
// inverse of ToCartesian for the same origin and axis.
func (o Origin) ToWindow(v int, a Axis) int {
	if a == AxisX {
		return v + o.CenterX
	}
	return o.CenterY - v
}

// Cartesian converts a window point.
func (o Origin) Cartesian(p WindowPoint) CartesianPoint {
	return CartesianPoint{X: o.ToCartesian(p.X, AxisX), Y: o.ToCartesian(p.Y, AxisY)}
}

// Window converts a Cartesian point.
func (o Origin) Window(p CartesianPoint) WindowPoint {
	return WindowPoint{X: o.ToWindow(p.X, AxisX), Y: o.ToWindow(p.Y, AxisY)}
}

// Shift moves the origin by a window-space delta.
func (o Origin) Shift(dx, dy int) Origin {
	return Origin{CenterX: o.CenterX + dx, CenterY: o.CenterY + dy}
}

func (o Origin) String() string { return fmt.Sprintf("%d,%d", o.CenterX, o.CenterY) }

// Parse reads an origin in the "x,y" form produced by String.
func Parse(s string) (Origin, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Origin{}, fmt.Errorf("origin %q: want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Origin{}, fmt.Errorf("origin %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Origin{}, fmt.Errorf("origin %q: bad y: %w", s, err)
	}
	return Origin{CenterX: x, CenterY: y}, nil
}
