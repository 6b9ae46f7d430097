// Package boardgen parses boardgen command flags and runs its subcommands.
package boardgen

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/nlbtt/internal/config"
	"github.com/katalvlaran/nlbtt/layout"
)

// ErrUsage marks command line mistakes; the binary exits with status 2.
var ErrUsage = errors.New("usage")

// Subcommands.
const (
	CmdGenerate = "generate"
	CmdInspect  = "inspect"
	CmdShow     = "show"
	CmdList     = "list"
	CmdView     = "view"
)

var commands = []string{CmdGenerate, CmdInspect, CmdShow, CmdList, CmdView}

// Config holds boardgen command configuration. Environment variables set the
// defaults; flags override them.
type Config struct {
	Command string

	Width          int     `env:"BOARDGEN_WIDTH" envDefault:"20"`
	Height         int     `env:"BOARDGEN_HEIGHT" envDefault:"20"`
	StartX         int     `env:"BOARDGEN_START_X" envDefault:"10"`
	StartY         int     `env:"BOARDGEN_START_Y" envDefault:"0"`
	Waypoints      int     `env:"BOARDGEN_WAYPOINTS" envDefault:"4"`
	MinRadius      int     `env:"BOARDGEN_MIN_RADIUS" envDefault:"1"`
	MaxRadius      int     `env:"BOARDGEN_MAX_RADIUS" envDefault:"2"`
	OrthogonalProb float64 `env:"BOARDGEN_ORTHOGONAL_PROB" envDefault:"0.6"`
	DiagonalProb   float64 `env:"BOARDGEN_DIAGONAL_PROB" envDefault:"0.3"`
	Seed           int64   `env:"BOARDGEN_SEED" envDefault:"0"`
	DBPath         string  `env:"BOARDGEN_DB_PATH"`

	Spine   bool
	Verbose bool
	ID      int64
	Limit   int
	In      string
	Diag    bool
}

// Params converts the tuning fields into generator parameters.
func (c Config) Params() layout.Params {
	return layout.Params{
		Width:          c.Width,
		Height:         c.Height,
		Start:          layout.Position{X: c.StartX, Y: c.StartY},
		Waypoints:      c.Waypoints,
		MinRadius:      c.MinRadius,
		MaxRadius:      c.MaxRadius,
		OrthogonalProb: c.OrthogonalProb,
		DiagonalProb:   c.DiagonalProb,
	}
}

// ParseConfig parses environment and flags into a Config. An optional
// subcommand may precede the flags; it defaults to generate.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.Command = CmdGenerate
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		if !isCommand(args[0]) {
			return Config{}, fmt.Errorf("%w: unknown command %q (commands: generate, inspect, show, list, view)", ErrUsage, args[0])
		}
		cfg.Command = args[0]
		args = args[1:]
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	fs.IntVar(&cfg.StartX, "start-x", cfg.StartX, "start cell x")
	fs.IntVar(&cfg.StartY, "start-y", cfg.StartY, "start cell y")
	fs.IntVar(&cfg.Waypoints, "waypoints", cfg.Waypoints, "number of waypoints to sample")
	fs.IntVar(&cfg.MinRadius, "min-radius", cfg.MinRadius, "minimum buff radius")
	fs.IntVar(&cfg.MaxRadius, "max-radius", cfg.MaxRadius, "maximum buff radius")
	fs.Float64Var(&cfg.OrthogonalProb, "orth-prob", cfg.OrthogonalProb, "buff probability for orthogonal offsets")
	fs.Float64Var(&cfg.DiagonalProb, "diag-prob", cfg.DiagonalProb, "buff probability for diagonal offsets")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to sqlite layout store")
	fs.BoolVar(&cfg.Spine, "spine", false, "highlight spine cells in the dump")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.Int64Var(&cfg.ID, "id", 0, "stored layout ID (show)")
	fs.IntVar(&cfg.Limit, "limit", 20, "maximum layouts to list (list)")
	fs.StringVar(&cfg.In, "in", "", "read a layout dump from this file instead of generating (inspect)")
	fs.BoolVar(&cfg.Diag, "diag", false, "also count 8-connected islands (inspect)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}

	switch cfg.Command {
	case CmdShow:
		if cfg.DBPath == "" || cfg.ID <= 0 {
			return Config{}, fmt.Errorf("%w: show requires -db and -id", ErrUsage)
		}
	case CmdList:
		if cfg.DBPath == "" {
			return Config{}, fmt.Errorf("%w: list requires -db", ErrUsage)
		}
		if cfg.Limit <= 0 {
			return Config{}, fmt.Errorf("%w: -limit must be positive", ErrUsage)
		}
	}
	return cfg, nil
}

func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}
