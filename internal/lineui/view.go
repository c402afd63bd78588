package lineui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/cartline/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvasRegion := layout.Get("canvas")
	panelRegion := layout.Get("panel")

	var layers []*lipgloss.Layer

	// Background
	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
	)

	mode := "PIXELS"
	if m.Glyphs {
		mode = "GLYPHS"
	}
	tbContent := fmt.Sprintf(
		" cartline  │  %s  │  ←↑↓→ origin  [c]enter  [o]rigin  [s]napshot  │  [?] [q]uit",
		mode,
	)
	layers = append(layers, tealayout.ToolbarLayer(tbContent, m.Width, tbStyle))

	w, h := canvasRegion.Size()
	ftContent := fmt.Sprintf(" Grid: %dx%d  Origin: %s  Mouse: %s → %s",
		w, h, m.Origin, m.Cursor, m.CursorCartesian())
	layers = append(layers, tealayout.FooterLayer(ftContent, m.Width, m.Height-1, ftStyle))

	layers = append(layers, m.buildCanvasLayer(canvasRegion.Rect))

	// Side panel
	pr := panelRegion.Rect
	pw, ph := panelRegion.Size()
	if pw > 0 && ph > 0 && pr.Min.X >= 0 {
		helpH := min(len(helpLines)+2, ph)
		infoH := ph - helpH

		layers = append(layers,
			tealayout.FillLayer(panelRegion, panelPadStyle, "panel-bg", 0),
			tealayout.VerticalSeparator(pr.Min.X, pr.Min.Y, ph, sepStyle),
			m.buildInfoPanelLayer(pr.Min.X+1, pr.Min.Y, pw-1, infoH),
			buildHelpPanelLayer(pr.Min.X+1, pr.Min.Y+infoH, pw-1, helpH),
		)
	}

	if m.ShowHelp {
		layers = append(layers, tealayout.ModalLayer(helpText(), m.Width, m.Height, modalStyle))
	}
	if m.PromptOpen {
		content := strings.Join([]string{
			"Set origin (window cells, x,y)",
			"",
			m.Prompt.View(),
			"",
			"[enter] apply  [esc] cancel",
		}, "\n")
		layers = append(layers, tealayout.ModalLayer(content, m.Width, m.Height, modalStyle))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func helpText() string {
	return strings.Join([]string{
		"cartline: integer line rasterizer",
		"",
		"The grid is window space (y down). Cartesian",
		"space has its origin at the red block (y up).",
		"Lines are traced in Cartesian space and every",
		"pixel is converted back to a window cell.",
		"",
		strings.Join(helpLines, "\n"),
		"",
		"[esc] close",
	}, "\n")
}
