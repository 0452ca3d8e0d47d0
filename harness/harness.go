package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpattern/codec"
	"github.com/katalvlaran/lvpattern/embed"
	"github.com/katalvlaran/lvpattern/fixture"
	"github.com/katalvlaran/lvpattern/subgraph"
)

// Run executes cfg.Trials trials with at most cfg.Workers in flight.
// Mismatches are reported in the Report, not as errors; an error means the
// run itself could not complete (invalid config, cancelled context).
// A nil logger falls back to log.Default().
func Run(ctx context.Context, cfg Config, logger *log.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}
	modes, err := cfg.hardModes()
	if err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	report := &Report{
		RunID:  uuid.NewString(),
		Seed:   cfg.Seed,
		Trials: make([]TrialResult, cfg.Trials),
	}
	logger = logger.With("run", report.RunID[:8])
	logger.Info("verification started", "trials", cfg.Trials, "seed", cfg.Seed, "workers", cfg.Workers, "oracle", cfg.Oracle)

	// Streams are derived up front so results do not depend on scheduling.
	base := fixture.New(fixture.WithSeed(cfg.Seed))
	gens := make([]*fixture.Generator, cfg.Trials)
	for i := range gens {
		gens[i] = base.Derive(uint64(i))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range gens {
		g.Go(func() error {
			res, err := runTrial(gctx, i, gens[i], cfg, modes)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			report.Trials[i] = res
			if res.OK() {
				logger.Debug("trial passed", "trial", i, "n", res.SourceSize, "k", res.PatternSize, "planted", res.Planted)
			} else {
				logger.Warn("trial failed", "trial", i, "n", res.SourceSize, "k", res.PatternSize)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}

	logger.Info("verification finished", "trials", cfg.Trials, "failed", len(report.Failed()))

	return report, nil
}

// runTrial draws one fixture and checks every mode.
func runTrial(ctx context.Context, index int, gen *fixture.Generator, cfg Config, modes []bool) (TrialResult, error) {
	src, err := gen.Matrix(cfg.Source)
	if err != nil {
		return TrialResult{}, err
	}
	pat, err := gen.Matrix(cfg.Pattern)
	if err != nil {
		return TrialResult{}, err
	}
	emb, err := embed.NewEmbedder(src)
	if err != nil {
		return TrialResult{}, err
	}
	planted, err := fixture.Plant(gen, emb, pat, cfg.Plant, cfg.MaxAttempts)
	if err != nil && !errors.Is(err, fixture.ErrPlantExhausted) {
		return TrialResult{}, err
	}

	target := emb.Target()
	doc, err := codec.NewDocument(target, pat, false)
	if err != nil {
		return TrialResult{}, err
	}
	doc.SetPlanted(planted)

	res := TrialResult{
		Index:       index,
		SourceSize:  target.Size(),
		PatternSize: pat.Size(),
		Planted:     len(planted),
		Fixture:     doc,
	}
	for _, hard := range modes {
		fast, err := subgraph.Find(target, pat, subgraph.WithHardCheck(hard), subgraph.WithContext(ctx))
		if err != nil {
			return TrialResult{}, err
		}
		mr := ModeResult{HardCheck: hard, Fast: fast.Matches.Len(), Oracle: -1, Stats: fast.Stats}
		for _, a := range planted {
			if !fast.Matches.Has(a) {
				mr.MissingPlanted = append(mr.MissingPlanted, a)
			}
		}
		if cfg.Oracle {
			oracle, err := subgraph.Find(target, pat, subgraph.WithHardCheck(hard),
				subgraph.WithAlgorithm(subgraph.BruteForce), subgraph.WithContext(ctx))
			if err != nil {
				return TrialResult{}, err
			}
			mr.Oracle = oracle.Matches.Len()
			if extra := fast.Matches.Difference(oracle.Matches); extra.Len() > 0 {
				mr.OnlyFast = extra.Sorted()
			}
			if extra := oracle.Matches.Difference(fast.Matches); extra.Len() > 0 {
				mr.OnlyOracle = extra.Sorted()
			}
		}
		res.Modes = append(res.Modes, mr)
	}

	return res, nil
}
