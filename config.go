package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Config holds the command-line settings of the server
type Config struct {
	Addr       string
	LayoutPath string // .json matrix or .geojson obstacles, overrides Preset
	Preset     string
	Rows, Cols int // grid size for .geojson layouts
	CellSize   int // pixels per cell
	Start      Position
	Strict     bool // report unreachable targets instead of partial paths
	Reopen     bool // let cheaper routes reopen closed cells
}

// parseConfig reads flags from args (without the program name)
func parseConfig(args []string, output io.Writer) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("grid-path-planner", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Addr, "addr", ":8080", "HTTP listen address")
	fs.StringVar(&cfg.LayoutPath, "layout", "", "layout file (.json matrix or .geojson obstacles)")
	fs.StringVar(&cfg.Preset, "preset", "maze", "built-in layout when -layout is empty")
	fs.IntVar(&cfg.Rows, "rows", 10, "grid rows for .geojson layouts")
	fs.IntVar(&cfg.Cols, "cols", 10, "grid columns for .geojson layouts")
	fs.IntVar(&cfg.CellSize, "cell-size", 50, "cell size in pixels")
	fs.IntVar(&cfg.Start.Row, "start-row", 0, "start cell row")
	fs.IntVar(&cfg.Start.Col, "start-col", 0, "start cell column")
	fs.BoolVar(&cfg.Strict, "strict", false, "return an error for unreachable targets")
	fs.BoolVar(&cfg.Reopen, "reopen", false, "reopen closed cells when a cheaper route is found")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.CellSize <= 0 {
		return Config{}, fmt.Errorf("-cell-size must be positive, got %d", cfg.CellSize)
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return Config{}, errors.New("-rows and -cols must be positive")
	}
	if cfg.Rows > maxLayoutSide || cfg.Cols > maxLayoutSide {
		return Config{}, fmt.Errorf("-rows and -cols must be at most %d", maxLayoutSide)
	}

	return cfg, nil
}

// SearchOptions converts the flags into search options
func (cfg Config) SearchOptions() []SearchOption {
	var options []SearchOption
	if cfg.Strict {
		options = append(options, WithUnreachableError())
	}
	if cfg.Reopen {
		options = append(options, WithReopenClosed())
	}
	return options
}

// LoadMatrix returns the obstacle matrix selected by the config
func (cfg Config) LoadMatrix() ([][]int, error) {
	if cfg.LayoutPath != "" {
		return LoadLayout(cfg.LayoutPath, cfg.Rows, cfg.Cols, cfg.CellSize)
	}
	return PresetLayout(cfg.Preset)
}
