package lineui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/wesen/cartline/pkg/coordmap"
	"github.com/wesen/cartline/pkg/tealayout"
)

// handleMouse tracks the cursor inside the drawing area and moves the
// anchor on clicks.
func handleMouse(m Model, msg tea.MouseMsg, canvas tealayout.Region) Model {
	mouse := msg.Mouse()

	// Only process mouse events inside the drawing area
	if !canvas.Contains(mouse.X, mouse.Y) {
		return m
	}

	local := canvas.Local(mouse.X, mouse.Y)
	m.Cursor = coordmap.WindowPoint{X: local.X, Y: local.Y}
	m.HasCursor = true

	if click, ok := msg.(tea.MouseClickMsg); ok {
		switch click.Button {
		case tea.MouseLeft:
			m.Anchor = m.CursorCartesian()
		case tea.MouseRight:
			m.Anchor = coordmap.CartesianPoint{}
		}
	}

	return m
}
