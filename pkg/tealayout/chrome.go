package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ToolbarLayer creates a Layer for a one-line toolbar at the top of the screen.
func ToolbarLayer(content string, width int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).MaxHeight(1).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(0).Z(1).ID("toolbar")
}

// FooterLayer creates a Layer for a one-line footer at row y.
func FooterLayer(content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).MaxHeight(1).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(1).ID("footer")
}

// VerticalSeparator creates a Layer with a vertical line of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	if height <= 0 {
		return lipgloss.NewLayer("").X(x).Y(y).Z(1).ID("separator")
	}
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// PanelLayer stacks pre-styled lines into a width×height block at
// (x, y). Lines are cut or padded to exactly height rows, and each row
// is right-padded with pad so the background is continuous.
func PanelLayer(lines []string, x, y, width, height int, pad lipgloss.Style, id string) *lipgloss.Layer {
	if width <= 0 || height <= 0 {
		return lipgloss.NewLayer("").X(x).Y(y).Z(1).ID(id)
	}
	rows := make([]string, height)
	copy(rows, lines)
	for i, l := range rows {
		if gap := width - lipgloss.Width(l); gap > 0 {
			l += pad.Render(strings.Repeat(" ", gap))
		}
		rows[i] = l
	}
	return lipgloss.NewLayer(strings.Join(rows, "\n")).X(x).Y(y).Z(1).ID(id)
}

// ModalLayer creates a centered high-Z overlay Layer.
// The content is rendered inside boxStyle, then centered on the terminal.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	w := lipgloss.Width(rendered)
	h := lipgloss.Height(rendered)
	cx := max((termW-w)/2, 0)
	cy := max((termH-h)/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a Layer filled with the given style at a region's position.
// Useful for creating background layers that fill a layout region.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Size()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
