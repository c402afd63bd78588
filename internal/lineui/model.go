// Package lineui is the terminal frame loop around the rasterizer: it
// tracks the mouse, owns the origin, and redraws the axes, the origin
// marker and a line from the anchor to the cursor on every frame.
package lineui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/wesen/cartline/internal/config"
	"github.com/wesen/cartline/pkg/coordmap"
)

const panelWidth = 30

// Model is the application state.
type Model struct {
	Width, Height int

	// Cursor is the mouse position local to the drawing area.
	Cursor    coordmap.WindowPoint
	HasCursor bool

	// Origin is where Cartesian (0,0) sits in the drawing area. Unless
	// Pinned it follows the center on resize.
	Origin coordmap.Origin
	Pinned bool

	// Anchor is the Cartesian start of the cursor line.
	Anchor coordmap.CartesianPoint

	Glyphs      bool // direction glyphs instead of solid pixels
	TickSpacing int
	SnapshotDir string

	ShowHelp   bool
	PromptOpen bool
	Prompt     textinput.Model

	Status    string
	StatusErr bool
	snapshots int
}

// NewModel creates the initial model from conf.
func NewModel(conf config.Config) Model {
	m := Model{
		Origin:      coordmap.DefaultOrigin,
		TickSpacing: conf.TickSpacing,
		SnapshotDir: conf.SnapshotDir,
	}
	if o, ok, err := conf.ParsedOrigin(); err == nil && ok {
		m.Origin = o
		m.Pinned = true
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// CursorCartesian returns the cursor in Cartesian coordinates.
func (m Model) CursorCartesian() coordmap.CartesianPoint {
	return m.Origin.Cartesian(m.Cursor)
}
