// Command lvphase unwraps a phase image or a synthetic surface and writes the
// result, an optional heat-map plot and an optional run-history record.
//
//	lvphase -synth vortex -rows 128 -cols 128 -out u.png -plot u_plot.png
//	lvphase -in wrapped.tiff -algo itoh -config lvphase.json -db runs.db
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvphase"
	"github.com/katalvlaran/lvphase/goldstein"
	"github.com/katalvlaran/lvphase/grid"
	"github.com/katalvlaran/lvphase/imaging"
	"github.com/katalvlaran/lvphase/internal/config"
	"github.com/katalvlaran/lvphase/phase"
	"github.com/katalvlaran/lvphase/render"
	"github.com/katalvlaran/lvphase/store"
	"github.com/katalvlaran/lvphase/synth"
	"github.com/katalvlaran/lvphase/unwrap"
)

var errUsage = errors.New("usage")

type cliFlags struct {
	in, synth        string
	rows, cols       int
	seed             int64
	algo, configPath string
	out, plot, db    string
	verbose          bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvphase", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f cliFlags
	fs.StringVar(&f.in, "in", "", "wrapped phase image (png, jpeg, gif, tiff, bmp)")
	fs.StringVar(&f.synth, "synth", "", "synthetic input: ramp | paraboloid | simplex | vortex")
	fs.IntVar(&f.rows, "rows", 128, "rows of the synthetic input")
	fs.IntVar(&f.cols, "cols", 128, "columns of the synthetic input")
	fs.Int64Var(&f.seed, "seed", 1, "seed of the synthetic input")
	fs.StringVar(&f.algo, "algo", "", "algorithm: itoh | goldstein (overrides config)")
	fs.StringVar(&f.configPath, "config", "", "JSON configuration file")
	fs.StringVar(&f.out, "out", "", "write the unwrapped grid as 8-bit PNG")
	fs.StringVar(&f.plot, "plot", "", "write a heat-map plot (png, svg, pdf)")
	fs.StringVar(&f.db, "db", "", "record the run in this SQLite database (overrides config)")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	lvphase.SetLogger(logger)
	defer lvphase.SetLogger(nil)

	if err := execute(f); err != nil {
		slog.Error("lvphase failed", "error", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}

	return 0
}

func execute(f cliFlags) error {
	cfg := config.Empty()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return err
		}
	}
	algo := cfg.GetAlgorithm()
	if f.algo != "" {
		algo = f.algo
	}
	dbPath := cfg.GetDBPath()
	if f.db != "" {
		dbPath = f.db
	}

	wrapped, source, err := loadInput(f, cfg)
	if err != nil {
		return err
	}
	slog.Info("input loaded", "source", source, "rows", wrapped.Rows(), "cols", wrapped.Cols())

	start := time.Now()
	u, rec, overlays, err := unwrapGrid(algo, wrapped, cfg)
	if err != nil {
		return err
	}
	rec.Source = source
	rec.Rows, rec.Cols = wrapped.Rows(), wrapped.Cols()
	rec.DurationMs = time.Since(start).Milliseconds()
	slog.Info("unwrapped", "algorithm", algo, "duration_ms", rec.DurationMs,
		"min", u.Min(), "max", u.Max(), "mean", u.Mean())

	if f.out != "" {
		if err := imaging.SavePNG(f.out, u); err != nil {
			return err
		}
		slog.Info("wrote image", "path", f.out)
	}
	if f.plot != "" {
		opts := append([]render.Option{render.WithTitle(algo + ": " + source)}, overlays...)
		p, err := render.Heatmap(u, opts...)
		if err != nil {
			return err
		}
		w := vg.Length(cfg.GetRenderWidth()) * vg.Inch
		h := vg.Length(cfg.GetRenderHeight()) * vg.Inch
		if err := render.Save(p, f.plot, w, h); err != nil {
			return err
		}
		slog.Info("wrote plot", "path", f.plot)
	}
	if dbPath != "" {
		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		saved, err := db.Record(rec)
		if err != nil {
			return err
		}
		slog.Info("run recorded", "id", saved.ID, "db", dbPath)
	}

	return nil
}

func loadInput(f cliFlags, cfg *config.Config) (*grid.Grid, string, error) {
	switch {
	case f.in != "" && f.synth != "":
		return nil, "", fmt.Errorf("%w: -in and -synth are exclusive", errUsage)
	case f.in != "":
		g, err := imaging.Load(f.in, cfg.GetScaleMin(), cfg.GetScaleMax())
		return g, f.in, err
	case f.synth != "":
		g, err := synthesize(f.synth, f.rows, f.cols, f.seed)
		return g, "synth:" + f.synth, err
	default:
		return nil, "", fmt.Errorf("%w: one of -in or -synth is required", errUsage)
	}
}

// synthesize returns the wrapped form of a named synthetic surface.
func synthesize(name string, rows, cols int, seed int64) (*grid.Grid, error) {
	if rows < unwrap.MinRows || cols < unwrap.MinCols {
		return nil, fmt.Errorf("%w: -rows and -cols must be at least 2", errUsage)
	}
	var truth *grid.Grid
	switch name {
	case "ramp":
		truth = synth.Ramp(rows, cols, 0.3, 0.2)
	case "paraboloid":
		truth = synth.Paraboloid(rows, cols, 8/float64(max(rows, cols)))
	case "simplex":
		truth = synth.Simplex(rows, cols, synth.WithSeed(seed), synth.WithOctaves(3))
	case "vortex":
		return synth.Vortex(rows, cols, float64(rows)/2+0.3, float64(cols)/2+0.4, 1), nil
	default:
		return nil, fmt.Errorf("%w: unknown -synth %q", errUsage, name)
	}

	return phase.WrapGrid(truth), nil
}

// unwrapGrid runs the selected algorithm and returns the unwrapped grid, the
// run record and the plot overlays it produced.
func unwrapGrid(algo string, wrapped *grid.Grid, cfg *config.Config) (*grid.Grid, store.Run, []render.Option, error) {
	rec := store.Run{Algorithm: algo}
	switch algo {
	case config.AlgorithmItoh:
		it, err := unwrap.NewItoh(wrapped, cfg.ItohOptions()...)
		if err != nil {
			return nil, rec, nil, err
		}
		if err := it.Unwrap(); err != nil {
			return nil, rec, nil, err
		}
		return it.Unwrapped(), rec, nil, nil

	case config.AlgorithmGoldstein:
		gs, err := goldstein.New(wrapped, cfg.GoldsteinOptions()...)
		if err != nil {
			return nil, rec, nil, err
		}
		rep, err := gs.Run()
		if err != nil {
			return nil, rec, nil, err
		}
		slog.Info("goldstein report",
			"residues", rep.Residues, "dipoles", rep.Dipoles,
			"grounded", rep.Grounded, "balanced", rep.Balanced,
			"unresolved", len(rep.Unresolved), "cuts", rep.Cuts, "regions", rep.Regions)
		overlays := []render.Option{render.WithResidues(gs.Residues()), render.WithCuts(gs.BranchCuts())}
		return gs.Unwrapped(), rec.FromReport(rep), overlays, nil

	default:
		return nil, rec, nil, fmt.Errorf("%w: unknown algorithm %q", errUsage, algo)
	}
}
