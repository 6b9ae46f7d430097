package boardgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/nlbtt/gridgraph"
	"github.com/katalvlaran/nlbtt/internal/preview"
	"github.com/katalvlaran/nlbtt/internal/store/sqlite"
	"github.com/katalvlaran/nlbtt/layout"
)

// openScreen returns an initialised terminal screen for the view command.
var openScreen = func() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// Run executes the configured subcommand. Layout dumps and listings go to
// out; diagnostics go to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(io.Discard, "boardgen: ", 0)
	if cfg.Verbose {
		logger.SetOutput(errOut)
	}

	switch cfg.Command {
	case CmdShow:
		return runShow(ctx, cfg, out)
	case CmdList:
		return runList(ctx, cfg, out)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Printf("using random seed %d", cfg.Seed)
	}

	switch cfg.Command {
	case CmdInspect:
		return runInspect(ctx, cfg, out, logger)
	case CmdView:
		return runView(ctx, cfg)
	default:
		return runGenerate(ctx, cfg, out, logger)
	}
}

func runGenerate(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	res, err := layout.Build(cfg.Params(), layout.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	logger.Printf("seed %d, waypoints %v, spine %d cells, occupied %d",
		res.Seed, res.Waypoints, len(res.Spine), res.Grid.Count())

	if cfg.DBPath != "" {
		id, err := persist(ctx, cfg.DBPath, res, logger)
		if err != nil {
			return err
		}
		logger.Printf("layout stored as #%d", id)
	}

	fmt.Fprint(out, layout.Render(res.Grid, renderOptions(cfg, res)))
	return nil
}

// persist saves res unless an identical layout is already stored.
func persist(ctx context.Context, path string, res layout.Result, logger *log.Logger) (int64, error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	existing, err := store.FindBySeed(ctx, res.Params, res.Seed)
	switch {
	case err == nil:
		logger.Printf("layout already stored")
		return existing.ID, nil
	case !errors.Is(err, sqlite.ErrNotFound):
		return 0, err
	}
	return store.Save(ctx, sqlite.Record{Params: res.Params, Seed: res.Seed, Grid: res.Grid})
}

func renderOptions(cfg Config, res layout.Result) layout.RenderOptions {
	start := res.Params.Start
	opts := layout.RenderOptions{Start: &start}
	if cfg.Spine {
		opts.Spine = res.Spine
	}
	return opts
}

func runInspect(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		grid  *layout.Grid
		start *layout.Position
		spine = -1
	)
	if cfg.In != "" {
		data, err := os.ReadFile(cfg.In)
		if err != nil {
			return fmt.Errorf("read dump: %w", err)
		}
		grid, err = layout.Parse(string(data))
		if err != nil {
			return err
		}
		logger.Printf("loaded %dx%d layout from %s", grid.Width(), grid.Height(), cfg.In)
	} else {
		res, err := layout.Build(cfg.Params(), layout.WithSeed(cfg.Seed))
		if err != nil {
			return err
		}
		grid = res.Grid
		start = &res.Params.Start
		spine = len(res.Spine)
		fmt.Fprintf(out, "seed: %d\n", res.Seed)
	}

	gg, err := gridgraph.FromMask(grid.Rows(), gridgraph.Conn4)
	if err != nil {
		return err
	}
	stats := gg.Stats()
	fmt.Fprintf(out, "size: %dx%d\n", grid.Width(), grid.Height())
	fmt.Fprintf(out, "occupied: %d\n", stats.Land)
	if spine >= 0 {
		fmt.Fprintf(out, "spine: %d\n", spine)
	}
	fmt.Fprintf(out, "components: %d\n", stats.Components)
	fmt.Fprintf(out, "largest: %d\n", stats.Largest)
	fmt.Fprintf(out, "connected: %t\n", gg.IsConnected())
	if cfg.Diag {
		gg8, err := gridgraph.FromMask(grid.Rows(), gridgraph.Conn8)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "diagonal components: %d\n", gg8.Stats().Components)
	}
	if start != nil {
		reach, err := gg.Reachable(start.X, start.Y)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "reachable from start: %d\n", len(reach))
	}
	if stats.Components > 1 {
		// Cells needed to join the first two components.
		_, cost, err := gg.Bridge(0, 1)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "bridge cost: %d\n", cost)
	}
	return nil
}

func runShow(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	rec, err := store.Get(ctx, cfg.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "#%d seed %d created %s\n", rec.ID, rec.Seed, rec.CreatedAt.Format(time.RFC3339))
	start := rec.Params.Start
	fmt.Fprint(out, layout.Render(rec.Grid, layout.RenderOptions{Start: &start}))
	return nil
}

func runList(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	recs, err := store.List(ctx, cfg.Limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(out, "no stored layouts")
		return nil
	}
	fmt.Fprintf(out, "%-6s %-8s %-20s %-6s %s\n", "ID", "SIZE", "SEED", "CELLS", "CREATED")
	for _, rec := range recs {
		size := fmt.Sprintf("%dx%d", rec.Params.Width, rec.Params.Height)
		fmt.Fprintf(out, "%-6d %-8s %-20d %-6d %s\n",
			rec.ID, size, rec.Seed, rec.Occupied, rec.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func runView(ctx context.Context, cfg Config) error {
	// Fail on bad params before taking over the terminal.
	if err := cfg.Params().Validate(); err != nil {
		return err
	}
	screen, err := openScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	viewer := preview.NewViewer(screen, cfg.Params(), cfg.Seed, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := viewer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
