package lineui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/wesen/cartline/pkg/cellbuf"
	"github.com/wesen/cartline/pkg/snapshot"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: CRT green on near-black with a red origin.
var (
	colorBG     = c("#080e0b")
	colorAxis   = c("#1a6a4a")
	colorTick   = c("#44aa77")
	colorLine   = c("#00ffc8")
	colorAnchor = c("#ffcc00")
	colorOrigin = c("#ff3344")

	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
	panelBG      = c("#10201a")
)

// cellbuf style keys for the drawing area.
const (
	styleBG     cellbuf.StyleKey = 0
	styleAxis   cellbuf.StyleKey = 1
	styleTick   cellbuf.StyleKey = 2
	styleLine   cellbuf.StyleKey = 3
	styleAnchor cellbuf.StyleKey = 4
	styleOrigin cellbuf.StyleKey = 5
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:     lipgloss.NewStyle().Background(colorBG),
	styleAxis:   lipgloss.NewStyle().Foreground(colorAxis).Background(colorBG),
	styleTick:   lipgloss.NewStyle().Foreground(colorTick).Background(colorBG),
	styleLine:   lipgloss.NewStyle().Foreground(colorLine).Background(colorBG),
	styleAnchor: lipgloss.NewStyle().Foreground(colorAnchor).Background(colorBG).Bold(true),
	styleOrigin: lipgloss.NewStyle().Foreground(colorOrigin).Background(colorBG).Bold(true),
}

// snapPalette colors cells in exported snapshots.
var snapPalette = snapshot.Palette{
	styleBG:     colorBG,
	styleAxis:   colorAxis,
	styleTick:   colorTick,
	styleLine:   colorLine,
	styleAnchor: colorAnchor,
	styleOrigin: colorOrigin,
}

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(panelBG)

	panelValStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG)

	panelErrStyle = lipgloss.NewStyle().
			Foreground(c("#ff6655")).
			Background(panelBG)

	panelPadStyle = lipgloss.NewStyle().
			Background(panelBG)

	sepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#00d4a0")).
			Background(c("#0a1510")).
			Foreground(c("#00ffc8")).
			Padding(1, 2)
)
