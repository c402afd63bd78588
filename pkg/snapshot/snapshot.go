// Package snapshot exports a plotted cellbuf.Buffer as PNG or SVG, one
// square per cell, so a frame can be inspected outside the terminal.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	xdraw "golang.org/x/image/draw"

	"github.com/wesen/cartline/pkg/cellbuf"
)

// Palette maps cell styles to pixel colors. Styles missing from the
// palette are left transparent.
type Palette map[cellbuf.StyleKey]color.Color

// Image returns a W×H image with one pixel per cell.
func Image(buf *cellbuf.Buffer, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.W, buf.H))
	for y, row := range buf.Cells {
		for x, c := range row {
			if col, ok := pal[c.Style]; ok {
				img.Set(x, y, col)
			}
		}
	}
	return img
}

// WritePNG encodes the buffer as a PNG with each cell scaled to a
// scale×scale block.
func WritePNG(w io.Writer, buf *cellbuf.Buffer, pal Palette, scale int) error {
	if buf.W == 0 || buf.H == 0 {
		return fmt.Errorf("snapshot: empty buffer")
	}
	scale = max(scale, 1)
	src := Image(buf, pal)
	dst := image.NewRGBA(image.Rect(0, 0, buf.W*scale, buf.H*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// WriteSVG writes the buffer as an SVG document with a cell×cell rect
// for every non-background cell.
func WriteSVG(w io.Writer, buf *cellbuf.Buffer, pal Palette, cell int) error {
	if buf.W == 0 || buf.H == 0 {
		return fmt.Errorf("snapshot: empty buffer")
	}
	cell = max(cell, 1)
	bg := buf.Background()

	s := svg.New(w)
	s.Start(buf.W*cell, buf.H*cell)
	if col, ok := pal[bg]; ok {
		s.Rect(0, 0, buf.W*cell, buf.H*cell, fill(col))
	}
	for y, row := range buf.Cells {
		for x, c := range row {
			if c.Style == bg {
				continue
			}
			col, ok := pal[c.Style]
			if !ok {
				continue
			}
			s.Rect(x*cell, y*cell, cell, cell, fill(col))
		}
	}
	s.End()
	return nil
}

// Save writes <name>.png and <name>.svg into dir and returns their paths.
func Save(dir, name string, buf *cellbuf.Buffer, pal Palette) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	writers := []struct {
		ext   string
		write func(io.Writer) error
	}{
		{".png", func(w io.Writer) error { return WritePNG(w, buf, pal, 8) }},
		{".svg", func(w io.Writer) error { return WriteSVG(w, buf, pal, 8) }},
	}

	var paths []string
	for _, wr := range writers {
		path := filepath.Join(dir, name+wr.ext)
		if err := writeFile(path, wr.write); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	return nil
}

func fill(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("fill:#%02x%02x%02x", r>>8, g>>8, b>>8)
}
