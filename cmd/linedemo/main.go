// linedemo renders a fan of lines through every octant into a cell
// buffer and prints it, to eyeball the rasterizer without a mouse.
// With -png or -svg it also writes the frame to disk.
//
// Run: GOWORK=off go run ./cmd/linedemo/ [-glyphs] [-png fan.png] [-svg fan.svg]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/wesen/cartline/pkg/cellbuf"
	"github.com/wesen/cartline/pkg/coordmap"
	"github.com/wesen/cartline/pkg/drawutil"
	"github.com/wesen/cartline/pkg/raster"
	"github.com/wesen/cartline/pkg/snapshot"
)

// Style keys
const (
	BG     cellbuf.StyleKey = 0
	Axis   cellbuf.StyleKey = 1
	Tick   cellbuf.StyleKey = 2
	Line   cellbuf.StyleKey = 3
	Steep  cellbuf.StyleKey = 4
	Origin cellbuf.StyleKey = 5
)

var hex = map[cellbuf.StyleKey]string{
	BG:     "#0a0a0a",
	Axis:   "#1a6a4a",
	Tick:   "#44aa77",
	Line:   "#00d4a0",
	Steep:  "#ff6600",
	Origin: "#ff3344",
}

// fan lists segment end points; every segment starts at the origin.
var fan = []coordmap.CartesianPoint{
	{X: 28, Y: 4}, {X: 20, Y: 11}, {X: 4, Y: 11}, {X: -4, Y: 11},
	{X: -20, Y: 11}, {X: -28, Y: 4}, {X: -28, Y: -5}, {X: -14, Y: -11},
	{X: -2, Y: -11}, {X: 6, Y: -11}, {X: 24, Y: -9}, {X: 28, Y: -2},
}

func main() {
	glyphs := flag.Bool("glyphs", false, "draw direction glyphs instead of solid pixels")
	pngPath := flag.String("png", "", "write the frame as PNG")
	svgPath := flag.String("svg", "", "write the frame as SVG")
	flag.Parse()

	buf := cellbuf.New(61, 25, BG)
	o := coordmap.CenterOf(buf.W, buf.H)

	drawutil.DrawAxes(buf, o, Axis)
	drawutil.DrawTicks(buf, o, 5, 5, Tick)

	r := raster.New(o, buf)
	for _, end := range fan {
		seg := raster.Segment{A: coordmap.Pt(0, 0), B: end}
		style := Line
		if seg.Dominant() == coordmap.AxisY {
			style = Steep
		}
		if *glyphs {
			drawutil.DrawArrowLine(buf, o, seg, style, style)
			continue
		}
		r.WithInk(cellbuf.Ink(cellbuf.Block, style)).DrawSegment(seg)
	}
	drawutil.DrawOriginMarker(buf, o, Origin)

	styles := make(map[cellbuf.StyleKey]lipgloss.Style, len(hex))
	pal := make(snapshot.Palette, len(hex))
	for k, h := range hex {
		styles[k] = lipgloss.NewStyle().Foreground(lipgloss.Color(h)).Background(lipgloss.Color(hex[BG]))
		pal[k] = lipgloss.Color(h)
	}

	fmt.Println()
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ffc8")).
		Bold(true).
		Underline(true)
	fmt.Println(title.Render(fmt.Sprintf("  linedemo: %d segments, origin %s", len(fan), o)))
	fmt.Println()
	fmt.Println(buf.Render(styles))
	fmt.Println()
	legend := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	fmt.Println(legend.Render("  green=x-dominant  orange=y-dominant  red=origin"))
	fmt.Println()

	if err := export(*pngPath, func(w io.Writer) error { return snapshot.WritePNG(w, buf, pal, 8) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := export(*svgPath, func(w io.Writer) error { return snapshot.WriteSVG(w, buf, pal, 8) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func export(path string, write func(io.Writer) error) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
