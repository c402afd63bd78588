package lineui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/wesen/cartline/internal/logging"
	"github.com/wesen/cartline/pkg/coordmap"
	"github.com/wesen/cartline/pkg/snapshot"
	"github.com/wesen/cartline/pkg/tealayout"
)

// snapshotMsg reports the result of a snapshot command.
type snapshotMsg struct {
	paths []string
	err   error
}

// layout computes the screen regions. View and the mouse handler must
// agree on it.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if !m.Pinned {
			m = m.recenter()
		}

	case tea.KeyPressMsg:
		if m.PromptOpen {
			return m.handlePromptKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg, m.layout().Get("canvas")), nil

	case snapshotMsg:
		m.snapshots++
		if msg.err != nil {
			logging.L().Warn("snapshot failed", "err", msg.err)
			m = m.setStatus(msg.err.Error(), true)
		} else {
			logging.L().Info("snapshot saved", "paths", msg.paths)
			m = m.setStatus(fmt.Sprintf("saved %d files", len(msg.paths)), false)
		}
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Origin panning pins the origin.
	case "up":
		m = m.moveOrigin(0, -1)
	case "down":
		m = m.moveOrigin(0, 1)
	case "left":
		m = m.moveOrigin(-1, 0)
	case "right":
		m = m.moveOrigin(1, 0)

	case "c":
		m.Pinned = false
		m = m.recenter()
		m = m.setStatus("origin follows center", false)

	case "r":
		m.Anchor = coordmap.CartesianPoint{}

	case "g":
		m.Glyphs = !m.Glyphs

	case "o":
		return m.openPrompt()

	case "s":
		return m, m.snapshotCmd()

	case "?":
		m.ShowHelp = !m.ShowHelp

	case "esc", "escape":
		m.ShowHelp = false
	}

	return m, nil
}

func (m Model) moveOrigin(dx, dy int) Model {
	m.Origin = m.Origin.Shift(dx, dy)
	m.Pinned = true
	logging.L().Debug("origin moved", "origin", m.Origin.String())
	return m
}

// recenter puts the origin in the middle of the drawing area.
func (m Model) recenter() Model {
	w, h := m.layout().Get("canvas").Size()
	m.Origin = coordmap.CenterOf(w, h)
	return m
}

func (m Model) setStatus(s string, isErr bool) Model {
	m.Status = s
	m.StatusErr = isErr
	return m
}

// openPrompt shows the origin entry field prefilled with the current origin.
func (m Model) openPrompt() (tea.Model, tea.Cmd) {
	m.Prompt = textinput.New()
	m.Prompt.Prompt = "origin> "
	m.Prompt.CharLimit = 16
	m.Prompt.SetValue(m.Origin.String())
	m.PromptOpen = true
	return m, m.Prompt.Focus()
}

// handlePromptKeys processes keys while the origin prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.PromptOpen = false
		m.Prompt.Blur()
		return m, nil

	case "enter":
		o, err := coordmap.Parse(m.Prompt.Value())
		if err != nil {
			m = m.setStatus(err.Error(), true)
			return m, nil
		}
		m.Origin = o
		m.Pinned = true
		m.PromptOpen = false
		m.Prompt.Blur()
		m = m.setStatus("origin set to "+o.String(), false)
		logging.L().Info("origin set", "origin", o.String())
		return m, nil
	}

	var cmd tea.Cmd
	m.Prompt, cmd = m.Prompt.Update(msg)
	return m, cmd
}

// snapshotCmd renders the current frame and writes it off the update loop.
func (m Model) snapshotCmd() tea.Cmd {
	w, h := m.layout().Get("canvas").Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	buf := m.frame(w, h)
	dir := m.SnapshotDir
	name := fmt.Sprintf("cartline-%s-%03d", time.Now().Format("2006-01-02_150405"), m.snapshots)
	return func() tea.Msg {
		paths, err := snapshot.Save(dir, name, buf, snapPalette)
		return snapshotMsg{paths: paths, err: err}
	}
}
