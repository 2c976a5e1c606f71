// Command ergmee runs one ERGM equilibrium-expectation chain end to end:
// load a configuration and a seed graph, bind the configured model terms,
// warm up with Algorithm S, fit θ with Algorithm EE, then simulate from
// the fitted θ and persist traces, statistics, and graph snapshots.
//
// Usage:
//
//	ergmee -config path/to/run.cfg [-seed N] [-cache dense|hash] [-experimental] [-allow-slow]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/networkee/ergmee/attr"
	"github.com/networkee/ergmee/chain"
	"github.com/networkee/ergmee/config"
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/effect"
	"github.com/networkee/ergmee/estimator"
	"github.com/networkee/ergmee/pajek"
	"github.com/networkee/ergmee/sampler"
	"github.com/networkee/ergmee/simulate"
	"github.com/networkee/ergmee/twopath"
)

// ErrSlowEffectNotAllowed is returned by bindEffects when a structParams or
// attrParams entry names an effect flagged Slow (e.g. PowerFourCycles) and
// the run was not started with -allow-slow.
var ErrSlowEffectNotAllowed = errors.New("ergmee: effect is flagged Slow; pass -allow-slow to bind it into a sweep")

func main() {
	configPath := flag.String("config", "", "path to the run configuration file (required)")
	seed := flag.Int64("seed", 1, "RNG seed for this chain")
	cacheFlag := flag.String("cache", "dense", "two-path cache strategy: dense or hash")
	experimental := flag.Bool("experimental", false, "allow experimental model terms (e.g. BipartiteAltK4CyclesA)")
	allowSlow := flag.Bool("allow-slow", false, "allow model terms flagged Slow (e.g. PowerFourCycles) into a production sweep")
	flag.Parse()

	log := slog.Default()

	if *configPath == "" {
		log.Error("ergmee: -config is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, *configPath, *seed, *cacheFlag, *experimental, *allowSlow); err != nil {
		log.Error("ergmee: chain run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, configPath string, seed int64, cacheFlag string, experimental, allowSlow bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("ergmee: config loaded", "path", configPath)

	g, err := loadGraph(cfg)
	if err != nil {
		return fmt.Errorf("loading graph: %w", err)
	}
	log.Info("ergmee: graph loaded", "nodes", g.N(), "edges", g.EdgeCount(), "directed", g.Directed(), "bipartite", g.Bipartite())

	attrs, err := loadAttrs(cfg, g.N())
	if err != nil {
		return fmt.Errorf("loading attributes: %w", err)
	}

	cacheKind, err := parseCacheKind(cacheFlag)
	if err != nil {
		return err
	}

	regOpts := []effect.RegistryOption{}
	if experimental {
		regOpts = append(regOpts, effect.WithExperimental())
	}
	if cfg.MaxCachedPower > 0 {
		regOpts = append(regOpts, effect.WithMaxCachedPower(cfg.MaxCachedPower))
	}
	registry := effect.NewRegistry(regOpts...)

	effects, labels, err := bindEffects(registry, cfg, g, allowSlow)
	if err != nil {
		return fmt.Errorf("binding model terms: %w", err)
	}
	log.Info("ergmee: model terms bound", "count", len(effects), "terms", labels)

	var chainOpts []chain.Option
	if cfg.DebugAssertCache {
		chainOpts = append(chainOpts, chain.WithDebugCache())
		log.Info("ergmee: debugAssertCache enabled, two-path cache will self-verify every update")
	}
	c := chain.New(g, cacheKind, attrs, seed, chainOpts...)
	state := c.Context()

	theta := make([]float64, len(effects))
	model, err := sampler.NewModel(effects, theta, cfg.ForbidReciprocity)
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	kernel, err := buildKernel(cfg)
	if err != nil {
		return err
	}

	if cfg.ObservedStatsFilePrefix != "" {
		observed := make([]float64, len(effects))
		for i, e := range effects {
			observed[i] = e.StatDirect(state)
		}
		if err := writeStatsRow(cfg.ObservedStatsFilePrefix+".txt", labels, observed); err != nil {
			return fmt.Errorf("writing observed stats: %w", err)
		}
	}

	log.Info("ergmee: Algorithm S starting", "seed", seed, "Ssteps", cfg.Ssteps)
	sp := estimator.Params{ACA_S: cfg.ACAS, Ssteps: cfg.Ssteps, InnerSteps: cfg.SamplerSteps}
	_, stepScale, err := estimator.AlgorithmS(ctx, kernel, state, c.RNG(), model, sp)
	if err != nil {
		return fmt.Errorf("Algorithm S: %w", err)
	}
	log.Info("ergmee: Algorithm S finished", "stepScale", stepScale)

	log.Info("ergmee: Algorithm EE starting", "EEsteps", cfg.EEsteps)
	ep := estimator.Params{
		ACA_EE:       cfg.ACAEE,
		CompC:        cfg.CompC,
		EEsteps:      cfg.EEsteps,
		InnerSteps:   cfg.EEInnerSteps,
		UseBorisenko: cfg.UseBorisenkoUpdate,
	}
	result, err := estimator.AlgorithmEE(ctx, kernel, state, c.RNG(), model, ep, stepScale)
	if err != nil && (result == nil || !result.Unconverged) {
		return fmt.Errorf("Algorithm EE: %w", err)
	}
	eeErr := err
	if result.Unconverged {
		log.Warn("ergmee: chain terminated on numeric failure before convergence check")
	} else if !result.Converged {
		log.Warn("ergmee: chain completed without converging", "tRatios", result.TRatios)
	} else {
		log.Info("ergmee: chain converged", "theta", result.Theta, "tRatios", result.TRatios)
	}

	if cfg.ThetaFilePrefix != "" {
		if err := writeTrace(cfg.ThetaFilePrefix+".trace", labels, result.ThetaHistory, result.AcceptanceRates); err != nil {
			return fmt.Errorf("writing theta trace: %w", err)
		}
	}
	if cfg.DzAFilePrefix != "" {
		if err := writeTrace(cfg.DzAFilePrefix+".trace", labels, result.History, result.AcceptanceRates); err != nil {
			return fmt.Errorf("writing dzA trace: %w", err)
		}
	}
	if eeErr != nil {
		return fmt.Errorf("Algorithm EE: %w", eeErr)
	}

	log.Info("ergmee: simulation starting", "burnin", cfg.Burnin, "interval", cfg.Interval, "sampleSize", cfg.SampleSize)
	rows, err := simulate.Run(ctx, kernel, state, c.RNG(), model, cfg.Burnin, cfg.Interval, cfg.SampleSize,
		func(step int, snapG *core.Graph) error {
			return writeSnapshot(cfg.SimNetFilePrefix, step, snapG)
		})
	if err != nil {
		return fmt.Errorf("simulating: %w", err)
	}
	if err := writeStatsTable(cfg.StatsFile, labels, rows); err != nil {
		return fmt.Errorf("writing simulated stats: %w", err)
	}
	log.Info("ergmee: chain run complete", "samples", len(rows))

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return config.Parse(f)
}

func loadGraph(cfg *config.Config) (*core.Graph, error) {
	f, err := os.Open(cfg.ArclistFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opts []core.GraphOption
	if cfg.AllowLoops {
		opts = append(opts, core.WithLoops())
	}

	return pajek.ReadGraph(f, opts...)
}

func loadAttrs(cfg *config.Config, n int) (*attr.Store, error) {
	store := attr.NewStore(n)

	readers := []struct {
		path string
		load func(f *os.File) error
	}{
		{cfg.BinattrFile, func(f *os.File) error { return pajek.ReadBinaryAttrs(f, store, n) }},
		{cfg.CatattrFile, func(f *os.File) error { return pajek.ReadCategoricalAttrs(f, store, n) }},
		{cfg.ContattrFile, func(f *os.File) error { return pajek.ReadContinuousAttrs(f, store, n) }},
		{cfg.SetattrFile, func(f *os.File) error { return pajek.ReadSetAttrs(f, store, n) }},
	}
	for _, r := range readers {
		if r.path == "" {
			continue
		}
		if err := func() error {
			f, err := os.Open(r.path)
			if err != nil {
				return err
			}
			defer f.Close()

			return r.load(f)
		}(); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func parseCacheKind(s string) (twopath.Kind, error) {
	switch s {
	case "dense":
		return twopath.KindDense, nil
	case "hash":
		return twopath.KindHash, nil
	default:
		return 0, fmt.Errorf("ergmee: unknown -cache %q (want dense or hash)", s)
	}
}

// bindEffects binds every structParams and attrParams entry (in that
// order) to an *effect.Effect, and returns a matching, human-readable
// label per effect for trace/stats headers. An effect flagged Slow is
// rejected unless allowSlow is set — DESIGN.md documents why PowerFourCycles
// must stay out of production sweeps by default.
func bindEffects(registry *effect.Registry, cfg *config.Config, g *core.Graph, allowSlow bool) ([]*effect.Effect, []string, error) {
	var effects []*effect.Effect
	var labels []string

	for _, p := range cfg.StructParams {
		lambda := 0.0
		if p.HasLambda {
			lambda = p.Lambda
		}
		e, err := registry.Bind(p.Name, lambda, "", g)
		if err != nil {
			return nil, nil, err
		}
		if e.Slow() && !allowSlow {
			return nil, nil, fmt.Errorf("%w: %q", ErrSlowEffectNotAllowed, p.Name)
		}
		effects = append(effects, e)
		labels = append(labels, p.Name)
	}
	for _, p := range cfg.AttrParams {
		lambda := 0.0
		if p.HasLambda {
			lambda = p.Lambda
		}
		e, err := registry.Bind(p.Name, lambda, p.AttrName, g)
		if err != nil {
			return nil, nil, err
		}
		if e.Slow() && !allowSlow {
			return nil, nil, fmt.Errorf("%w: %q", ErrSlowEffectNotAllowed, p.Name)
		}
		effects = append(effects, e)
		labels = append(labels, fmt.Sprintf("%s(%s)", p.Name, p.AttrName))
	}

	return effects, labels, nil
}

func buildKernel(cfg *config.Config) (sampler.Kernel, error) {
	switch {
	case cfg.UseIFDSampler:
		return &sampler.IFDKernel{K: cfg.IFDK}, nil
	case cfg.UseTNTSampler:
		return &sampler.TNTKernel{}, nil
	default:
		return &sampler.BasicKernel{}, nil
	}
}

func writeTrace(path string, labels []string, rows [][]float64, acceptanceRates []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tw := pajek.NewTraceWriter(f, labels)
	for t, row := range rows {
		if err := tw.WriteRow(t, row, acceptanceRates[t]); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeStatsRow(path string, labels []string, values []float64) error {
	return writeStatsTable(path, labels, []simulate.Row{{Step: 0, Stats: values}})
}

func writeStatsTable(path string, labels []string, rows []simulate.Row) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tw := pajek.NewTraceWriter(f, labels)
	for _, row := range rows {
		if err := tw.WriteRow(row.Step, row.Stats, 0); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeSnapshot(prefix string, step int, g *core.Graph) error {
	if prefix == "" {
		return nil
	}
	f, err := os.Create(pajek.SnapshotName(prefix, step))
	if err != nil {
		return err
	}
	defer f.Close()

	return pajek.WriteGraph(f, g)
}
