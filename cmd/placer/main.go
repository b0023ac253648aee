// Command placer places the cells of a netlist on a grid by simulated
// annealing and reports the wirelength before and after.
//
// Usage:
//
//	placer [flags] <netlist>
//
// The netlist starts with a header whose third and fourth tokens are the
// grid rows and columns, followed by one net per line: a label and the
// integer identifiers of its cells.
//
// After the primary run at -rate the command sweeps the cooling rates in
// -rates (disable with -sweep=false). -seeds N adds a study over N derived
// seeds per rate. Plots, CSV tables, per-step frames and an animated GIF are
// written only when their flag names a destination.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/placer/anneal"
	"github.com/katalvlaran/placer/netlist"
	"github.com/katalvlaran/placer/render"
	"github.com/katalvlaran/placer/report"
	"github.com/katalvlaran/placer/sweep"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type config struct {
	path    string
	rate    float64
	seed    int64
	doSweep bool
	rates   []float64
	seeds   int
	workers int
	style   string
	verify  bool
	plots   string
	csvDir  string
	frames  string
	gifPath string
	every   int
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("placer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: placer [flags] <netlist>")
		fs.PrintDefaults()
	}

	cfg := &config{}
	var rates string
	fs.Float64Var(&cfg.rate, "rate", anneal.DefaultCoolingRate, "cooling rate of the primary run, in (0,1)")
	fs.Int64Var(&cfg.seed, "seed", anneal.DefaultSeed, "random seed (0 selects the default)")
	fs.BoolVar(&cfg.doSweep, "sweep", true, "run the cooling-rate sweep after the primary run")
	fs.StringVar(&rates, "rates", "0.75,0.8,0.85,0.9,0.95", "comma-separated cooling rates for the sweep")
	fs.IntVar(&cfg.seeds, "seeds", 0, "if > 1, also run a study over this many derived seeds per rate")
	fs.IntVar(&cfg.workers, "workers", 1, "concurrent runs during sweep and study")
	fs.StringVar(&cfg.style, "style", "ids", "grid labels: ids, index or occupancy")
	fs.BoolVar(&cfg.verify, "verify", false, "re-check the cost cache after every temperature step")
	fs.StringVar(&cfg.plots, "plots", "", "directory for PNG charts")
	fs.StringVar(&cfg.csvDir, "csv", "", "directory for CSV tables")
	fs.StringVar(&cfg.frames, "frames", "", "directory for per-step PNG frames of the primary run")
	fs.StringVar(&cfg.gifPath, "gif", "", "path of an animated GIF of the primary run")
	fs.IntVar(&cfg.every, "every", 1, "record every n-th temperature step in frames and GIF")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one netlist path")
	}
	cfg.path = fs.Arg(0)

	for _, tok := range strings.Split(rates, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		r, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("-rates: %w", err)
		}
		cfg.rates = append(cfg.rates, r)
	}
	switch cfg.style {
	case "ids", "index", "occupancy":
	default:
		return nil, fmt.Errorf("-style: unknown style %q", cfg.style)
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "placer:", err)
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err = execute(ctx, cfg, stdout, logger); err != nil {
		logger.Error("placer failed", "err", err)
		return exitError
	}

	return exitOK
}

func execute(ctx context.Context, cfg *config, stdout io.Writer, logger *slog.Logger) error {
	nl, err := netlist.Load(cfg.path)
	if err != nil {
		return err
	}
	logger.Debug("netlist loaded",
		"path", cfg.path,
		"rows", nl.Grid.Rows, "cols", nl.Grid.Cols,
		"cells", nl.NumCells(), "nets", nl.NumNets(), "pins", nl.Pins(),
		"maxDegree", nl.MaxDegree())

	optList := []anneal.Option{anneal.WithSeed(cfg.seed)}
	if cfg.verify {
		optList = append(optList, anneal.WithVerify())
	}
	base := anneal.NewOptions(optList...)

	if err = primary(ctx, cfg, nl, base, stdout, logger); err != nil {
		return err
	}
	if cfg.doSweep {
		if err = runSweep(ctx, cfg, nl, base, stdout, logger); err != nil {
			return err
		}
	}
	if cfg.seeds > 1 {
		if err = runStudy(ctx, cfg, nl, base, stdout, logger); err != nil {
			return err
		}
	}

	return nil
}

func textOptions(style string, nl *netlist.Netlist) render.TextOptions {
	switch style {
	case "occupancy":
		return render.OccupancyOptions()
	case "index":
		return render.TextOptions{}
	default:
		return render.IDOptions(nl)
	}
}

func primary(ctx context.Context, cfg *config, nl *netlist.Netlist, base anneal.Options, stdout io.Writer, logger *slog.Logger) error {
	opts := base
	opts.CoolingRate = cfg.rate

	var observers []anneal.Observer
	var gifRec *render.GIFRecorder
	if cfg.frames != "" || cfg.gifPath != "" {
		imgOpts := render.DefaultImageOptions()
		imgOpts.Label = render.CellIDs(nl)
		painter, err := render.NewPainter(imgOpts)
		if err != nil {
			return err
		}
		if cfg.frames != "" {
			rec, err := render.NewFrameRecorder(cfg.frames, painter, cfg.every)
			if err != nil {
				return err
			}
			observers = append(observers, rec)
		}
		if cfg.gifPath != "" {
			if gifRec, err = render.NewGIFRecorder(painter, cfg.every, 10); err != nil {
				return err
			}
			observers = append(observers, gifRec)
		}
	}
	if len(observers) > 0 {
		opts.Observer = anneal.Observers(observers...)
	}

	fmt.Fprintf(stdout, "Running simulated annealing with cooling rate: %g\n", cfg.rate)
	res, err := anneal.Run(ctx, nl, opts)
	if err != nil {
		return err
	}
	logger.Debug("primary run finished",
		"rate", cfg.rate, "steps", res.Steps,
		"proposed", res.Proposed, "accepted", res.Accepted,
		"acceptance", res.AcceptanceRate())

	txt := textOptions(cfg.style, nl)
	fmt.Fprintf(stdout, "Initial Placement (Cooling rate: %g):\n", cfg.rate)
	if err = render.Text(stdout, res.Initial, txt); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Initial total wire length:", res.InitialCost)
	fmt.Fprintf(stdout, "Final Placement (Cooling rate: %g):\n", cfg.rate)
	if err = render.Text(stdout, res.Final, txt); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Final total wire length:", res.FinalCost)
	fmt.Fprintln(stdout, "Execution time:", res.Elapsed.Seconds(), "seconds")

	if gifRec != nil {
		if err = writeFile(cfg.gifPath, gifRec.Encode); err != nil {
			return err
		}
		logger.Debug("gif written", "path", cfg.gifPath, "frames", gifRec.Len())
	}
	if cfg.plots != "" {
		p, err := report.TrajectoryPlot(res.Temperatures, res.Costs, cfg.rate)
		if err != nil {
			logger.Warn("trajectory plot skipped", "err", err)
		} else if err = saveIn(cfg.plots, fmt.Sprintf("trajectory_%g.png", cfg.rate), p); err != nil {
			return err
		}
	}
	if cfg.csvDir != "" {
		path := filepath.Join(cfg.csvDir, fmt.Sprintf("trajectory_%g.csv", cfg.rate))
		err = writeFile(path, func(w io.Writer) error {
			return report.WriteTrajectoryCSV(w, res.Temperatures, res.Costs)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func runSweep(ctx context.Context, cfg *config, nl *netlist.Netlist, base anneal.Options, stdout io.Writer, logger *slog.Logger) error {
	points := sweep.Run(ctx, nl, cfg.rates, sweep.Options{Anneal: base, Workers: cfg.workers})
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Cooling rate sweep:")
	for _, p := range points {
		if p.Err != nil {
			logger.Warn("sweep run failed", "rate", p.Rate, "err", p.Err)
			fmt.Fprintf(stdout, "  rate %-5g  failed\n", p.Rate)
			continue
		}
		fmt.Fprintf(stdout, "  rate %-5g  initial %6d  final %6d  steps %5d  %.3fs\n",
			p.Rate, p.InitialCost, p.FinalCost, p.Steps, p.Elapsed.Seconds())
	}
	if best, ok := sweep.Best(points); ok {
		fmt.Fprintf(stdout, "Best cooling rate: %g (final total wire length %d)\n", best.Rate, best.FinalCost)
	}

	if cfg.plots != "" {
		p, err := report.SweepPlot(points)
		if err != nil {
			logger.Warn("sweep plot skipped", "err", err)
		} else if err = saveIn(cfg.plots, "sweep.png", p); err != nil {
			return err
		}
	}
	if cfg.csvDir != "" {
		err := writeFile(filepath.Join(cfg.csvDir, "sweep.csv"), func(w io.Writer) error {
			return report.WriteSweepCSV(w, points)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func runStudy(ctx context.Context, cfg *config, nl *netlist.Netlist, base anneal.Options, stdout io.Writer, logger *slog.Logger) error {
	seeds := sweep.Seeds(cfg.seed, cfg.seeds)
	sums := sweep.Study(ctx, nl, cfg.rates, seeds, sweep.Options{Anneal: base, Workers: cfg.workers})
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Seed study (%d seeds per rate):\n", len(seeds))
	for _, s := range sums {
		if s.Failed > 0 {
			logger.Warn("study runs failed", "rate", s.Rate, "failed", s.Failed)
		}
		if s.Runs == 0 {
			fmt.Fprintf(stdout, "  rate %-5g  failed\n", s.Rate)
			continue
		}
		fmt.Fprintf(stdout, "  rate %-5g  initial %8.1f  final %8.1f ± %.1f  [%g, %g]\n",
			s.Rate, s.MeanInitial, s.Mean, s.StdDev, s.Min, s.Max)
	}

	if cfg.csvDir != "" {
		return writeFile(filepath.Join(cfg.csvDir, "study.csv"), func(w io.Writer) error {
			return report.WriteStudyCSV(w, sums)
		})
	}

	return nil
}
