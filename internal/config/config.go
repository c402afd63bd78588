// Package config reads cartline settings from an optional JSON file and
// command-line flags. Flags that are set explicitly win over the file.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/wesen/cartline/pkg/coordmap"
)

// Config holds every recognized option.
type Config struct {
	// Origin is "x,y" in window cells. Empty means the origin follows
	// the center of the drawing area.
	Origin      string `json:"origin"`
	SnapshotDir string `json:"snapshot_dir"`
	LogFile     string `json:"log_file"`
	LogLevel    string `json:"log_level"`
	TickSpacing int    `json:"tick_spacing"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SnapshotDir: ".",
		LogLevel:    "info",
		TickSpacing: 5,
	}
}

// Load parses args (without the program name). The file named by -f is
// read first; a missing file is not an error.
func Load(args []string, stderr io.Writer) (Config, error) {
	def := Default()
	fset := flag.NewFlagSet("cartline", flag.ContinueOnError)
	fset.SetOutput(stderr)

	file := fset.String("f", "cartline.json", "config filename")
	origin := fset.String("origin", def.Origin, `origin "x,y" in window cells (empty: follow center)`)
	snapDir := fset.String("snapshot-dir", def.SnapshotDir, "directory for PNG/SVG snapshots")
	logFile := fset.String("log", def.LogFile, "log file (empty: no logging)")
	logLevel := fset.String("log-level", def.LogLevel, "debug, info, warn or error")
	ticks := fset.Int("ticks", def.TickSpacing, "axis tick spacing in cells (0: none)")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	conf, err := readFile(*file, def)
	if err != nil {
		return Config{}, err
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "origin":
			conf.Origin = *origin
		case "snapshot-dir":
			conf.SnapshotDir = *snapDir
		case "log":
			conf.LogFile = *logFile
		case "log-level":
			conf.LogLevel = *logLevel
		case "ticks":
			conf.TickSpacing = *ticks
		}
	})

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func readFile(fn string, conf Config) (Config, error) {
	file, err := os.Open(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", fn, err)
	}
	return conf, nil
}

// Validate checks values that flags and JSON cannot constrain.
func (c Config) Validate() error {
	if c.TickSpacing < 0 {
		return fmt.Errorf("config: tick spacing %d is negative", c.TickSpacing)
	}
	if _, _, err := c.ParsedOrigin(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParsedOrigin returns the configured origin and whether one was set.
func (c Config) ParsedOrigin() (coordmap.Origin, bool, error) {
	if c.Origin == "" {
		return coordmap.Origin{}, false, nil
	}
	o, err := coordmap.Parse(c.Origin)
	if err != nil {
		return coordmap.Origin{}, false, err
	}
	return o, true, nil
}
