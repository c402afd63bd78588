// Package cellbuf is the pixel grid that lines are plotted onto: a 2D
// buffer of styled cells addressed in window coordinates, with
// run-merged Lipgloss rendering for the terminal.
//
// Each cell holds a rune (the pixel glyph) and a StyleKey. At render
// time the caller provides a map[StyleKey]lipgloss.Style, so the buffer
// knows nothing about colors.
//
// Limitation: all runes are assumed to be single-width.
package cellbuf

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single pixel: a glyph and its style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Block is the solid pixel glyph.
const Block = '█'

// Ink returns a cell with the given glyph and style.
func Ink(ch rune, style StyleKey) Cell {
	return Cell{Ch: ch, Style: style}
}

// Buffer is a W×H grid of cells, origin top-left.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
	bg    StyleKey
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style. Negative sizes are clamped to zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w = max(w, 0)
	h = max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h), bg: defaultStyle}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetPixel plots c at window position (x, y). Pixels outside the buffer
// are dropped; there is no other clipping.
func (b *Buffer) SetPixel(x, y int, c Cell) {
	b.Set(x, y, c.Ch, c.Style)
}

// At returns the cell at (x, y) and whether it is inside the buffer.
func (b *Buffer) At(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.Cells[y][x], true
}

// SetString writes a string starting at (x, y), advancing x for each
// rune. Characters that fall outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Clear resets every cell to the style the buffer was created with.
func (b *Buffer) Clear() {
	b.Fill(b.bg)
}

// Background returns the style the buffer was created with.
func (b *Buffer) Background() StyleKey {
	return b.bg
}

// Count returns how many cells carry the given style.
func (b *Buffer) Count(style StyleKey) int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Style == style {
				n++
			}
		}
	}
	return n
}
