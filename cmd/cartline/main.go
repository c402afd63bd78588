// cartline draws a line from the Cartesian origin to the mouse cursor
// with an integer rasterizer, over the terminal cell grid.
//
// Run: GOWORK=off go run ./cmd/cartline/ [-origin x,y] [-log cartline.log]
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/cartline/internal/config"
	"github.com/wesen/cartline/internal/lineui"
	"github.com/wesen/cartline/internal/logging"
)

func main() {
	conf, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logs, err := logging.Open(conf.LogFile, conf.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logs.Close()

	logging.L().Info("starting", "origin", conf.Origin, "snapshot_dir", conf.SnapshotDir)

	p := tea.NewProgram(lineui.NewModel(conf))
	if _, err := p.Run(); err != nil {
		logging.L().Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logs.Close()
		os.Exit(1)
	}
}
