package lineui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/wesen/cartline/pkg/tealayout"
)

// row renders a "key value" pair for the info panel.
func row(key, val string) string {
	return panelKeyStyle.Render(fmt.Sprintf("  %-8s", key)) + panelValStyle.Render(val)
}

// infoLines describes the origin, the cursor and the current segment.
func (m Model) infoLines(width int) []string {
	follow := "follow"
	if m.Pinned {
		follow = "pinned"
	}
	lines := []string{
		panelTitleStyle.Render("⌖ COORDINATES"),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
		row("origin", fmt.Sprintf("%s (%s)", m.Origin, follow)),
		row("anchor", m.Anchor.String()),
	}

	if !m.HasCursor {
		lines = append(lines, panelDimStyle.Render("  move the mouse over the grid"))
		return lines
	}

	seg := m.cursorSegment()
	dx, dy := seg.Delta()
	lines = append(lines,
		row("window", m.Cursor.String()),
		row("cart", m.CursorCartesian().String()),
		"",
		panelTitleStyle.Render("╱ SEGMENT"),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
		row("dx,dy", fmt.Sprintf("%d,%d", dx, dy)),
		row("major", seg.Dominant().String()),
		row("pixels", fmt.Sprintf("%d", seg.Len())),
	)
	return lines
}

// buildInfoPanelLayer renders the info section of the side panel.
func (m Model) buildInfoPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := m.infoLines(width)
	if m.Status != "" {
		st := panelValStyle
		if m.StatusErr {
			st = panelErrStyle
		}
		lines = append(lines, "", st.Render("  "+truncate(m.Status, width-2)))
	}
	return tealayout.PanelLayer(lines, x, y, width, height, panelPadStyle, "panel-info")
}

var helpLines = []string{
	"mouse     line to cursor",
	"click     set anchor",
	"r-click   anchor to 0,0",
	"arrows    move origin",
	"c         recenter origin",
	"o         type origin x,y",
	"g         glyphs / pixels",
	"s         save snapshot",
	"?         help   q quit",
}

// buildHelpPanelLayer renders the static key reference at the panel bottom.
func buildHelpPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render("❓ KEYS"),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}
	for _, l := range helpLines {
		lines = append(lines, panelDimStyle.Render("  "+l))
	}
	return tealayout.PanelLayer(lines, x, y, width, height, panelPadStyle, "panel-help")
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
